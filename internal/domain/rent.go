package domain

import "time"

// Rent records a dress lent to a customer. ReturnDate and PaymentTotal are
// computed once at creation from the grace period and the dress's rent price
// at that moment; neither is re-derived later. A rent is immutable once
// created except for deletion.
type Rent struct {
	ID            int32     `json:"id"`
	DressID       int32     `json:"dress_id"`
	CustomerID    int32     `json:"customer_id"`
	RentDate      time.Time `json:"rent_date"`
	ReturnDate    time.Time `json:"return_date"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	PaymentTotal  int32     `json:"payment_total"`
}

// IsReturned reports whether the rental period has elapsed. The dress is due
// back at end of the return date and counts as returned starting the
// following day, so the comparison is strictly after.
func (r *Rent) IsReturned(today time.Time) bool {
	return today.After(r.ReturnDate)
}
