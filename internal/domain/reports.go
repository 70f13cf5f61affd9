package domain

// MonthlyRentStat aggregates rents for one calendar month.
type MonthlyRentStat struct {
	Month    string `json:"month"` // yyyy-mm
	Rents    int32  `json:"rents"`
	Earnings int32  `json:"earnings"`
}

// CustomerRentStat ranks a customer by rental activity.
type CustomerRentStat struct {
	CustomerID    int32  `json:"customer_id"`
	Name          string `json:"name"`
	LastName      string `json:"last_name"`
	TotalRentals  int32  `json:"total_rentals"`
	TotalSpending int32  `json:"total_spending"`
}

// MonthlyMoneyStat lines up earnings against costs for one calendar month.
type MonthlyMoneyStat struct {
	Month            string `json:"month"` // yyyy-mm
	Earnings         int32  `json:"earnings"`
	MaintenanceCosts int32  `json:"maintenance_costs"`
	AcquisitionCosts int32  `json:"acquisition_costs"`
}

// WeekdayRentStat counts rents started on a given weekday.
type WeekdayRentStat struct {
	Weekday string `json:"weekday"`
	Rents   int32  `json:"rents"`
}
