package service

import (
	"context"
	"fmt"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/repository"
)

type saleService struct {
	store repository.Store
	now   func() time.Time
}

func NewSaleService(store repository.Store) SaleService {
	return &saleService{
		store: store,
		now:   time.Now,
	}
}

func (s *saleService) CreateSale(ctx context.Context, input CreateSaleInput) (*domain.Sale, error) {
	if input.SaleDate.IsZero() {
		return nil, fmt.Errorf("%w: sale date is required", domain.ErrValidation)
	}
	if input.SalePrice < 0 {
		return nil, fmt.Errorf("%w: sale price must be non-negative", domain.ErrValidation)
	}

	sale := &domain.Sale{
		DressID:    input.DressID,
		CustomerID: input.CustomerID,
		SaleDate:   lifecycle.DateOnly(input.SaleDate),
		SalePrice:  input.SalePrice,
	}

	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, input.CustomerID); err != nil {
			return err
		}
		dress, err := tx.Dresses().GetByIDForUpdate(ctx, input.DressID)
		if err != nil {
			return err
		}
		if !dress.AvailableForSale() {
			return fmt.Errorf("%w: dress %d is rented, under maintenance or already sold", domain.ErrGuardViolation, dress.ID)
		}
		if err := tx.Sales().Create(ctx, sale); err != nil {
			return err
		}
		// Sold is terminal: the dress leaves the rentable pool for good.
		dress.MarkSold()
		return tx.Dresses().UpdateStatus(ctx, dress)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) GetSale(ctx context.Context, id int32) (*domain.Sale, error) {
	return s.store.Sales().GetByID(ctx, id)
}

func (s *saleService) ListSales(ctx context.Context, page, pageSize int32) ([]domain.Sale, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.store.Sales().List(ctx, page, pageSize)
}
