package service

import (
	"context"
	"time"

	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/logger"
	"cordelia-backend/internal/repository"
)

type reconcileService struct {
	store repository.Store
	now   func() time.Time
}

func NewReconcileService(store repository.Store) ReconcileService {
	return &reconcileService{
		store: store,
		now:   time.Now,
	}
}

// ReconcileInventory re-derives every dress's denormalized flags from its
// transaction history. Each dress runs in its own unit of work so one failure
// never blocks the rest of the pass.
func (s *reconcileService) ReconcileInventory(ctx context.Context) (ReconcileSummary, error) {
	today := lifecycle.DateOnly(s.now())

	ids, err := s.store.Dresses().ListIDs(ctx)
	if err != nil {
		return ReconcileSummary{}, err
	}

	var summary ReconcileSummary
	for _, id := range ids {
		err := s.store.ExecTx(ctx, func(tx repository.Store) error {
			dress, err := tx.Dresses().GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return recomputeDress(ctx, tx, dress, today)
		})
		if err != nil {
			logger.Error("inventory reconcile failed for dress", "dress_id", id, "error", err)
			summary.Failed++
			continue
		}
		summary.Processed++
	}
	return summary, nil
}

// ReconcileCustomers re-derives every customer's busy flag, one customer per
// unit of work.
func (s *reconcileService) ReconcileCustomers(ctx context.Context) (ReconcileSummary, error) {
	today := lifecycle.DateOnly(s.now())

	ids, err := s.store.Customers().ListIDs(ctx)
	if err != nil {
		return ReconcileSummary{}, err
	}

	var summary ReconcileSummary
	for _, id := range ids {
		err := s.store.ExecTx(ctx, func(tx repository.Store) error {
			return recomputeCustomerBusy(ctx, tx, id, today)
		})
		if err != nil {
			logger.Error("customer reconcile failed", "customer_id", id, "error", err)
			summary.Failed++
			continue
		}
		summary.Processed++
	}
	return summary, nil
}
