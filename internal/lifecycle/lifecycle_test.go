package lifecycle

import (
	"testing"
	"time"

	"cordelia-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentTotal(t *testing.T) {
	assert.Equal(t, int32(2088), RentTotal(1800, 16))
	assert.Equal(t, int32(114), RentTotal(99, 16))
	assert.Equal(t, int32(0), RentTotal(0, 16))
}

func TestReturnDate(t *testing.T) {
	rentDate := date(2024, time.January, 1)
	assert.Equal(t, date(2024, time.January, 4), ReturnDate(rentDate, 3))

	// Month rollover
	assert.Equal(t, date(2024, time.February, 2), ReturnDate(date(2024, time.January, 31), 2))

	// Timestamps collapse to their calendar date
	noon := time.Date(2024, time.January, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2024, time.January, 4), ReturnDate(noon, 3))
}

func TestIsOverdue_Boundary(t *testing.T) {
	rentDate := date(2024, time.January, 1)
	returnDate := ReturnDate(rentDate, 3)

	// Due at end of the return date, overdue starting the following day.
	assert.False(t, IsOverdue(rentDate.AddDate(0, 0, 3), returnDate))
	assert.True(t, IsOverdue(rentDate.AddDate(0, 0, 4), returnDate))
}

func TestRentsForReturns(t *testing.T) {
	n, err := RentsForReturns(4200, 1800)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), n)

	n, err = RentsForReturns(1800, 1800)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), n)

	_, err = RentsForReturns(4200, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = RentsForReturns(-1, 1800)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
