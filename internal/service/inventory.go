package service

import (
	"context"
	"fmt"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/repository"
)

type inventoryService struct {
	store     repository.Store
	reconcile ReconcileService
	now       func() time.Time
}

func NewInventoryService(store repository.Store, reconcile ReconcileService) InventoryService {
	return &inventoryService{
		store:     store,
		reconcile: reconcile,
		now:       time.Now,
	}
}

func (s *inventoryService) AddDress(ctx context.Context, input AddDressInput) (*domain.Dress, error) {
	if input.Size <= 0 {
		return nil, fmt.Errorf("%w: size is required", domain.ErrValidation)
	}
	if input.Color == "" || input.Style == "" || input.Brand == "" {
		return nil, fmt.Errorf("%w: color, style and brand are required", domain.ErrValidation)
	}
	if input.Cost < 0 || input.MarketPrice < 0 {
		return nil, fmt.Errorf("%w: prices must be non-negative", domain.ErrValidation)
	}

	// Also rejects rentPrice <= 0 before anything is constructed.
	rentsForReturns, err := lifecycle.RentsForReturns(input.Cost, input.RentPrice)
	if err != nil {
		return nil, err
	}

	dress := &domain.Dress{
		Size:            input.Size,
		Color:           input.Color,
		Style:           input.Style,
		Brand:           input.Brand,
		Description:     input.Description,
		Cost:            input.Cost,
		MarketPrice:     input.MarketPrice,
		RentPrice:       input.RentPrice,
		RentsForReturns: rentsForReturns,
		DateAdded:       s.now().UTC(),
	}
	if err := s.store.Dresses().Create(ctx, dress); err != nil {
		return nil, err
	}
	return dress, nil
}

func (s *inventoryService) GetDress(ctx context.Context, id int32) (*domain.Dress, error) {
	return s.store.Dresses().GetByID(ctx, id)
}

func (s *inventoryService) DeleteDress(ctx context.Context, id int32) error {
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		dress, err := tx.Dresses().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !dress.Deletable() {
			return fmt.Errorf("%w: dress %d has an active rent or maintenance, or is sold", domain.ErrGuardViolation, id)
		}
		return tx.Dresses().Delete(ctx, id)
	})
}

func (s *inventoryService) ListDresses(ctx context.Context, filter repository.DressFilter, page, pageSize int32) ([]domain.Dress, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if _, err := s.reconcile.ReconcileInventory(ctx); err != nil {
		return nil, 0, err
	}
	return s.store.Dresses().List(ctx, filter, page, pageSize)
}

func (s *inventoryService) DressRents(ctx context.Context, dressID int32) ([]domain.Rent, error) {
	if _, err := s.store.Dresses().GetByID(ctx, dressID); err != nil {
		return nil, err
	}
	return s.store.Rents().ListByDress(ctx, dressID)
}

func (s *inventoryService) DressMaintenances(ctx context.Context, dressID int32) ([]domain.Maintenance, error) {
	if _, err := s.store.Dresses().GetByID(ctx, dressID); err != nil {
		return nil, err
	}
	return s.store.Maintenances().ListByDress(ctx, dressID)
}

func (s *inventoryService) DressSale(ctx context.Context, dressID int32) (*domain.Sale, error) {
	if _, err := s.store.Dresses().GetByID(ctx, dressID); err != nil {
		return nil, err
	}
	return s.store.Sales().GetByDress(ctx, dressID)
}

func (s *inventoryService) SetImagePath(ctx context.Context, id int32, path string) error {
	return s.store.Dresses().UpdateImagePath(ctx, id, path)
}
