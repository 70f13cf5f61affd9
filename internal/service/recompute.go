package service

import (
	"context"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

// recomputeDress re-derives a dress's denormalized flags from its full
// transaction history and persists them. Runs inside the caller's unit of
// work; the caller must already hold the dress row lock when the recompute
// follows a guarded write.
func recomputeDress(ctx context.Context, store repository.Store, dress *domain.Dress, today time.Time) error {
	rents, err := store.Rents().ListByDress(ctx, dress.ID)
	if err != nil {
		return err
	}
	maintenances, err := store.Maintenances().ListByDress(ctx, dress.ID)
	if err != nil {
		return err
	}
	dress.RecomputeTimesRented(rents)
	dress.RecomputeRentStatus(rents, today)
	dress.RecomputeMaintenanceStatus(maintenances, today)
	return store.Dresses().UpdateStatus(ctx, dress)
}

// recomputeCustomerBusy re-derives and persists a customer's busy flag from
// their rent history.
func recomputeCustomerBusy(ctx context.Context, store repository.Store, customerID int32, today time.Time) error {
	rents, err := store.Rents().ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	var c domain.Customer
	c.RecomputeBusyStatus(rents, today)
	return store.Customers().UpdateBusy(ctx, customerID, c.Busy)
}
