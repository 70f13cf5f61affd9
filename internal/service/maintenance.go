package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/repository"
)

type maintenanceService struct {
	store repository.Store
	rules lifecycle.Rules
	now   func() time.Time
}

func NewMaintenanceService(store repository.Store, rules lifecycle.Rules) MaintenanceService {
	return &maintenanceService{
		store: store,
		rules: rules,
		now:   time.Now,
	}
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, input CreateMaintenanceInput) (*domain.Maintenance, error) {
	if len(input.DressIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one dress is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must be non-negative", domain.ErrValidation)
	}

	// Ascending id order fixes the lock acquisition order across concurrent
	// batches.
	dressIDs := dedupeSorted(input.DressIDs)

	today := lifecycle.DateOnly(s.now())
	maintenance := &domain.Maintenance{
		Date:       lifecycle.DateOnly(input.Date),
		ReturnDate: lifecycle.ReturnDate(input.Date, s.rules.MaintenanceGraceDays),
		Type:       input.Type,
		Cost:       input.Cost,
		DressIDs:   dressIDs,
	}

	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		dresses := make([]*domain.Dress, 0, len(dressIDs))
		for _, id := range dressIDs {
			dress, err := tx.Dresses().GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if !dress.AvailableForMaintenance() {
				// One unavailable dress rejects the whole batch.
				return fmt.Errorf("%w: dress %d is rented, under maintenance or sold", domain.ErrGuardViolation, id)
			}
			dresses = append(dresses, dress)
		}
		if err := tx.Maintenances().Create(ctx, maintenance); err != nil {
			return err
		}
		for _, dress := range dresses {
			if err := recomputeDress(ctx, tx, dress, today); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return maintenance, nil
}

func (s *maintenanceService) DeleteMaintenance(ctx context.Context, id int32) error {
	today := lifecycle.DateOnly(s.now())
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		maintenance, err := tx.Maintenances().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !maintenance.IsReturned(today) {
			return fmt.Errorf("%w: maintenance %d is still active", domain.ErrGuardViolation, id)
		}
		dresses := make([]*domain.Dress, 0, len(maintenance.DressIDs))
		for _, dressID := range maintenance.DressIDs {
			dress, err := tx.Dresses().GetByIDForUpdate(ctx, dressID)
			if err != nil {
				return err
			}
			dresses = append(dresses, dress)
		}
		if err := tx.Maintenances().Delete(ctx, id); err != nil {
			return err
		}
		for _, dress := range dresses {
			if err := recomputeDress(ctx, tx, dress, today); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *maintenanceService) GetMaintenance(ctx context.Context, id int32) (*domain.Maintenance, error) {
	return s.store.Maintenances().GetByID(ctx, id)
}

func (s *maintenanceService) ListMaintenances(ctx context.Context, page, pageSize int32) ([]domain.Maintenance, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.store.Maintenances().List(ctx, page, pageSize)
}

func dedupeSorted(ids []int32) []int32 {
	sorted := make([]int32, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := sorted[:0]
	for i, id := range sorted {
		if i == 0 || id != sorted[i-1] {
			out = append(out, id)
		}
	}
	return out
}
