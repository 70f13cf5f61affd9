package postgres

import (
	"context"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

type reportRepository struct {
	db Querier
}

func NewReportRepository(db Querier) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) MonthlyRents(ctx context.Context) ([]domain.MonthlyRentStat, error) {
	query := `SELECT to_char(rent_date, 'YYYY-MM') AS month, count(*), COALESCE(sum(payment_total), 0)
	          FROM rents GROUP BY month ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.MonthlyRentStat
	for rows.Next() {
		var s domain.MonthlyRentStat
		if err := rows.Scan(&s.Month, &s.Rents, &s.Earnings); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepository) TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerRentStat, error) {
	query := `SELECT c.id, c.name, c.last_name, count(r.id), COALESCE(sum(r.payment_total), 0)
	          FROM customers c JOIN rents r ON r.customer_id = c.id
	          GROUP BY c.id, c.name, c.last_name
	          ORDER BY count(r.id) DESC, sum(r.payment_total) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.CustomerRentStat
	for rows.Next() {
		var s domain.CustomerRentStat
		if err := rows.Scan(&s.CustomerID, &s.Name, &s.LastName, &s.TotalRentals, &s.TotalSpending); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepository) CostsVsEarnings(ctx context.Context) ([]domain.MonthlyMoneyStat, error) {
	// One row per month appearing in any of the three series.
	query := `SELECT month,
	                 COALESCE(sum(earnings), 0),
	                 COALESCE(sum(maintenance_costs), 0),
	                 COALESCE(sum(acquisition_costs), 0)
	          FROM (
	              SELECT to_char(rent_date, 'YYYY-MM') AS month, payment_total AS earnings,
	                     0 AS maintenance_costs, 0 AS acquisition_costs FROM rents
	              UNION ALL
	              SELECT to_char(date, 'YYYY-MM'), 0, cost, 0 FROM maintenances
	              UNION ALL
	              SELECT to_char(date_added, 'YYYY-MM'), 0, 0, cost FROM dresses
	          ) series
	          GROUP BY month ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.MonthlyMoneyStat
	for rows.Next() {
		var s domain.MonthlyMoneyStat
		if err := rows.Scan(&s.Month, &s.Earnings, &s.MaintenanceCosts, &s.AcquisitionCosts); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepository) RentsByWeekday(ctx context.Context) ([]domain.WeekdayRentStat, error) {
	query := `SELECT trim(to_char(rent_date, 'Day')), count(*)
	          FROM rents
	          GROUP BY trim(to_char(rent_date, 'Day')), extract(isodow FROM rent_date)
	          ORDER BY extract(isodow FROM rent_date)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.WeekdayRentStat
	for rows.Next() {
		var s domain.WeekdayRentStat
		if err := rows.Scan(&s.Weekday, &s.Rents); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
