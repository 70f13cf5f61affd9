package domain

import "time"

// Customer rents and buys dresses. Email and phone number are unique.
//
// Busy mirrors the customer's latest rent the same way Dress.RentStatus does:
// true while that rent is unreturned. It is denormalized and recomputed
// through RecomputeBusyStatus.
type Customer struct {
	ID          int32     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Busy        bool      `json:"busy"`
	DateAdded   time.Time `json:"date_added"`
}

// RecomputeBusyStatus derives the busy flag from the customer's rents, keyed
// by latest rent date with highest id breaking ties.
func (c *Customer) RecomputeBusyStatus(rents []Rent, today time.Time) {
	last := latestRent(rents)
	if last == nil {
		c.Busy = false
		return
	}
	c.Busy = !last.IsReturned(today)
}
