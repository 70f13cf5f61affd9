// Package lifecycle holds the pure calculators behind the inventory engine:
// tax-inclusive rent totals, return dates and the overdue boundary, and the
// rents-for-returns threshold. Everything here is deterministic and
// timezone-naive; callers supply calendar dates, not timestamps.
package lifecycle

import (
	"fmt"
	"time"

	"cordelia-backend/internal/domain"
)

// Defaults observed across the business's history. All three are
// configurable; see config.LifecycleConfig.
const (
	DefaultRentGraceDays        = 3
	DefaultMaintenanceGraceDays = 2
	DefaultTaxPercent           = 16
)

// Rules carries the configured lifecycle constants into the services.
type Rules struct {
	RentGraceDays        int
	MaintenanceGraceDays int
	TaxPercent           int32
}

// DefaultRules returns the stock grace periods and tax rate.
func DefaultRules() Rules {
	return Rules{
		RentGraceDays:        DefaultRentGraceDays,
		MaintenanceGraceDays: DefaultMaintenanceGraceDays,
		TaxPercent:           DefaultTaxPercent,
	}
}

// RentTotal returns the tax-inclusive payment total for a rent price,
// truncated to a whole unit: floor(price * (100+taxPercent)/100). Exact in
// integer arithmetic since price is integral.
func RentTotal(rentPrice, taxPercent int32) int32 {
	return rentPrice + rentPrice*taxPercent/100
}

// ReturnDate is the expected return date for a transaction starting on
// startDate with the given grace period.
func ReturnDate(startDate time.Time, graceDays int) time.Time {
	return DateOnly(startDate).AddDate(0, 0, graceDays)
}

// IsOverdue reports whether returnDate has elapsed as of today. The item is
// due at end of the return date and overdue starting the following day, so
// the comparison is strictly after.
func IsOverdue(today, returnDate time.Time) bool {
	return DateOnly(today).After(DateOnly(returnDate))
}

// RentsForReturns is the number of rentals after which a dress has recouped
// its acquisition cost: cost / rentPrice in integer division. Computed once
// at dress creation and frozen.
func RentsForReturns(cost, rentPrice int32) (int32, error) {
	if rentPrice <= 0 {
		return 0, fmt.Errorf("%w: rent price must be positive, got %d", domain.ErrValidation, rentPrice)
	}
	if cost < 0 {
		return 0, fmt.Errorf("%w: cost must be non-negative, got %d", domain.ErrValidation, cost)
	}
	return cost / rentPrice, nil
}

// DateOnly strips the time-of-day component, pinning the date to UTC. The
// whole system treats the day as its atomic unit.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
