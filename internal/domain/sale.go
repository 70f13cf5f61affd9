package domain

import "time"

// Sale is the terminal transaction for a dress: once sold, the dress is
// excluded from all further rent and maintenance eligibility. One sale per
// dress.
type Sale struct {
	ID         int32     `json:"id"`
	DressID    int32     `json:"dress_id"`
	CustomerID int32     `json:"customer_id"`
	SaleDate   time.Time `json:"sale_date"`
	SalePrice  int32     `json:"sale_price"`
}
