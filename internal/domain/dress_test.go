package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDress_RecomputeTimesRented(t *testing.T) {
	d := &Dress{RentsForReturns: 2}

	d.RecomputeTimesRented([]Rent{{ID: 1}, {ID: 2}})
	assert.Equal(t, int32(2), d.TimesRented)
	assert.False(t, d.Sellable, "sellable requires strictly more rents than the threshold")

	d.RecomputeTimesRented([]Rent{{ID: 1}, {ID: 2}, {ID: 3}})
	assert.Equal(t, int32(3), d.TimesRented)
	assert.True(t, d.Sellable)

	d.RecomputeTimesRented(nil)
	assert.Equal(t, int32(0), d.TimesRented)
	assert.False(t, d.Sellable)
}

func TestDress_RecomputeRentStatus(t *testing.T) {
	today := date(2024, time.March, 10)
	d := &Dress{}

	d.RecomputeRentStatus(nil, today)
	assert.False(t, d.RentStatus)

	// Latest rent still out
	rents := []Rent{
		{ID: 1, RentDate: date(2024, time.February, 1), ReturnDate: date(2024, time.February, 4)},
		{ID: 2, RentDate: date(2024, time.March, 9), ReturnDate: date(2024, time.March, 12)},
	}
	d.RecomputeRentStatus(rents, today)
	assert.True(t, d.RentStatus)

	// Latest rent returned
	d.RecomputeRentStatus(rents, date(2024, time.March, 13))
	assert.False(t, d.RentStatus)
}

func TestDress_RecomputeRentStatus_TieBreakByID(t *testing.T) {
	today := date(2024, time.March, 10)
	sameDay := date(2024, time.March, 9)

	// Two rents on the same date: the one with the highest id wins.
	rents := []Rent{
		{ID: 7, RentDate: sameDay, ReturnDate: date(2024, time.March, 9)},  // already returned
		{ID: 9, RentDate: sameDay, ReturnDate: date(2024, time.March, 12)}, // still out
	}
	d := &Dress{}
	d.RecomputeRentStatus(rents, today)
	assert.True(t, d.RentStatus)

	d.RecomputeRentStatus([]Rent{rents[1], rents[0]}, today)
	assert.True(t, d.RentStatus, "order of the slice must not matter")
}

func TestDress_RecomputeMaintenanceStatus(t *testing.T) {
	today := date(2024, time.March, 10)
	d := &Dress{}

	d.RecomputeMaintenanceStatus(nil, today)
	assert.False(t, d.MaintenanceStatus)

	ms := []Maintenance{
		{ID: 1, Date: date(2024, time.March, 9), ReturnDate: date(2024, time.March, 11)},
	}
	d.RecomputeMaintenanceStatus(ms, today)
	assert.True(t, d.MaintenanceStatus)

	d.RecomputeMaintenanceStatus(ms, date(2024, time.March, 12))
	assert.False(t, d.MaintenanceStatus)
}

func TestDress_Availability(t *testing.T) {
	d := &Dress{}
	assert.True(t, d.AvailableForRent())
	assert.True(t, d.AvailableForMaintenance())
	assert.True(t, d.AvailableForSale())
	assert.True(t, d.Deletable())

	d = &Dress{RentStatus: true}
	assert.False(t, d.AvailableForRent())
	assert.False(t, d.AvailableForMaintenance())

	d = &Dress{MaintenanceStatus: true}
	assert.False(t, d.AvailableForRent())
	assert.False(t, d.AvailableForSale())

	d = &Dress{}
	d.MarkSold()
	assert.True(t, d.Sold)
	assert.False(t, d.AvailableForRent())
	assert.False(t, d.AvailableForMaintenance())
	assert.False(t, d.AvailableForSale())
	assert.False(t, d.Deletable())
}

func TestCustomer_RecomputeBusyStatus(t *testing.T) {
	today := date(2024, time.March, 10)
	c := &Customer{}

	c.RecomputeBusyStatus(nil, today)
	assert.False(t, c.Busy)

	rents := []Rent{
		{ID: 1, RentDate: date(2024, time.March, 9), ReturnDate: date(2024, time.March, 12)},
	}
	c.RecomputeBusyStatus(rents, today)
	assert.True(t, c.Busy)

	c.RecomputeBusyStatus(rents, date(2024, time.March, 13))
	assert.False(t, c.Busy)
}

func TestRent_IsReturned_Boundary(t *testing.T) {
	r := &Rent{ReturnDate: date(2024, time.January, 4)}
	assert.False(t, r.IsReturned(date(2024, time.January, 4)))
	assert.True(t, r.IsReturned(date(2024, time.January, 5)))
}
