package domain

import "time"

// Suggested maintenance types. Type is free text; these cover the usual cases.
const (
	MaintenanceTypeCleaning   = "Cleaning"
	MaintenanceTypeRepair     = "Repair"
	MaintenanceTypeAlteration = "Alteration"
)

// Maintenance records one or more dresses taken out of rentable circulation
// for servicing. A single maintenance event can cover multiple dresses.
type Maintenance struct {
	ID         int32     `json:"id"`
	Date       time.Time `json:"date"`
	ReturnDate time.Time `json:"return_date"`
	Type       string    `json:"maintenance_type"`
	Cost       int32     `json:"cost"`
	DressIDs   []int32   `json:"dress_ids,omitempty"`
}

// IsReturned reports whether the servicing period has elapsed, using the same
// strictly-after boundary as Rent.
func (m *Maintenance) IsReturned(today time.Time) bool {
	return today.After(m.ReturnDate)
}
