package domain

import "time"

// Dress is a rentable/sellable inventory item.
//
// TimesRented, Sellable, RentStatus and MaintenanceStatus are denormalized
// projections of the dress's transaction history. They are stored for query
// performance and must only be written through the Recompute* methods, fed
// with the full transaction sets for this dress.
type Dress struct {
	ID          int32     `json:"id"`
	Size        int32     `json:"size"`
	Color       string    `json:"color"`
	Style       string    `json:"style"`
	Brand       string    `json:"brand"`
	Description string    `json:"description,omitempty"`
	Cost        int32     `json:"cost"`
	MarketPrice int32     `json:"market_price"`
	RentPrice   int32     `json:"rent_price"`
	// RentsForReturns is cost / rentPrice at creation time, frozen. It anchors
	// sellability to the dress's original economics and is never recomputed,
	// even if cost or rentPrice change later.
	RentsForReturns   int32     `json:"rents_for_returns"`
	TimesRented       int32     `json:"times_rented"`
	Sellable          bool      `json:"sellable"`
	RentStatus        bool      `json:"rent_status"`
	MaintenanceStatus bool      `json:"maintenance_status"`
	Sold              bool      `json:"sold"`
	ImagePath         *string   `json:"image_path,omitempty"`
	DateAdded         time.Time `json:"date_added"`
}

// RecomputeTimesRented derives the rental counter and the sellable flag from
// the full set of rents recorded for this dress.
func (d *Dress) RecomputeTimesRented(rents []Rent) {
	d.TimesRented = int32(len(rents))
	d.Sellable = d.TimesRented > d.RentsForReturns
}

// RecomputeRentStatus derives the rented flag from the rent with the latest
// rent date. Equal dates are broken by highest id.
func (d *Dress) RecomputeRentStatus(rents []Rent, today time.Time) {
	last := latestRent(rents)
	if last == nil {
		d.RentStatus = false
		return
	}
	d.RentStatus = !last.IsReturned(today)
}

// RecomputeMaintenanceStatus derives the under-maintenance flag from the
// maintenance with the latest date. Equal dates are broken by highest id.
func (d *Dress) RecomputeMaintenanceStatus(maintenances []Maintenance, today time.Time) {
	last := latestMaintenance(maintenances)
	if last == nil {
		d.MaintenanceStatus = false
		return
	}
	d.MaintenanceStatus = !last.IsReturned(today)
}

// MarkSold transitions the dress into its terminal state. Callers must have
// checked AvailableForSale first.
func (d *Dress) MarkSold() {
	d.Sold = true
}

// AvailableForRent reports whether a new rent may be created for this dress.
func (d *Dress) AvailableForRent() bool {
	return !d.RentStatus && !d.MaintenanceStatus && !d.Sold
}

// AvailableForMaintenance reports whether the dress may enter maintenance.
// A dress already in one exclusive state cannot enter another, so the guard
// is identical to the rent guard.
func (d *Dress) AvailableForMaintenance() bool {
	return !d.RentStatus && !d.MaintenanceStatus && !d.Sold
}

// AvailableForSale reports whether the dress may be sold.
func (d *Dress) AvailableForSale() bool {
	return !d.RentStatus && !d.MaintenanceStatus && !d.Sold
}

// Deletable reports whether the dress may be physically removed: never while
// an unreturned rent or maintenance exists, and never once sold.
func (d *Dress) Deletable() bool {
	return !d.RentStatus && !d.MaintenanceStatus && !d.Sold
}

func latestRent(rents []Rent) *Rent {
	var last *Rent
	for i := range rents {
		r := &rents[i]
		if last == nil || r.RentDate.After(last.RentDate) ||
			(r.RentDate.Equal(last.RentDate) && r.ID > last.ID) {
			last = r
		}
	}
	return last
}

func latestMaintenance(maintenances []Maintenance) *Maintenance {
	var last *Maintenance
	for i := range maintenances {
		m := &maintenances[i]
		if last == nil || m.Date.After(last.Date) ||
			(m.Date.Equal(last.Date) && m.ID > last.ID) {
			last = m
		}
	}
	return last
}
