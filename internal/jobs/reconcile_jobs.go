package jobs

import (
	"context"
	"time"

	"cordelia-backend/internal/logger"
)

const jobTimeout = 10 * time.Minute

// ReconcileInventory re-derives every dress's denormalized lifecycle flags.
// Rents and maintenances expire by date alone, so without this pass a dress
// whose return date came and went would keep showing as unavailable.
func (jr *JobRunner) ReconcileInventory() {
	jr.runWithRecovery("ReconcileInventory", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		summary, err := jr.reconcile.ReconcileInventory(ctx)
		if err != nil {
			logger.Error("Inventory reconciliation failed", "error", err)
			return
		}
		logger.Info("Inventory reconciled",
			"processed", summary.Processed,
			"failed", summary.Failed)
	})
}

// ReconcileCustomers re-derives every customer's busy flag from their rent
// history.
func (jr *JobRunner) ReconcileCustomers() {
	jr.runWithRecovery("ReconcileCustomers", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		summary, err := jr.reconcile.ReconcileCustomers(ctx)
		if err != nil {
			logger.Error("Customer reconciliation failed", "error", err)
			return
		}
		logger.Info("Customers reconciled",
			"processed", summary.Processed,
			"failed", summary.Failed)
	})
}
