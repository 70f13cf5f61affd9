package service

import (
	"context"
	"fmt"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/repository"
)

type rentalService struct {
	store repository.Store
	rules lifecycle.Rules
	now   func() time.Time
}

func NewRentalService(store repository.Store, rules lifecycle.Rules) RentalService {
	return &rentalService{
		store: store,
		rules: rules,
		now:   time.Now,
	}
}

func (s *rentalService) CreateRent(ctx context.Context, input CreateRentInput) (*domain.Rent, error) {
	if input.RentDate.IsZero() {
		return nil, fmt.Errorf("%w: rent date is required", domain.ErrValidation)
	}

	today := lifecycle.DateOnly(s.now())
	rent := &domain.Rent{
		DressID:       input.DressID,
		CustomerID:    input.CustomerID,
		RentDate:      lifecycle.DateOnly(input.RentDate),
		ReturnDate:    lifecycle.ReturnDate(input.RentDate, s.rules.RentGraceDays),
		PaymentMethod: input.PaymentMethod,
	}

	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Customers().GetByID(ctx, input.CustomerID); err != nil {
			return err
		}
		dress, err := tx.Dresses().GetByIDForUpdate(ctx, input.DressID)
		if err != nil {
			return err
		}
		if !dress.AvailableForRent() {
			return fmt.Errorf("%w: dress %d is rented, under maintenance or sold", domain.ErrGuardViolation, dress.ID)
		}

		// Payment total snapshots the dress's rent price at creation time.
		rent.PaymentTotal = lifecycle.RentTotal(dress.RentPrice, s.rules.TaxPercent)

		if err := tx.Rents().Create(ctx, rent); err != nil {
			return err
		}
		if err := recomputeDress(ctx, tx, dress, today); err != nil {
			return err
		}
		return recomputeCustomerBusy(ctx, tx, input.CustomerID, today)
	})
	if err != nil {
		return nil, err
	}
	return rent, nil
}

func (s *rentalService) DeleteRent(ctx context.Context, id int32) error {
	today := lifecycle.DateOnly(s.now())
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		rent, err := tx.Rents().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !rent.IsReturned(today) {
			return fmt.Errorf("%w: rent %d is still active", domain.ErrGuardViolation, id)
		}
		dress, err := tx.Dresses().GetByIDForUpdate(ctx, rent.DressID)
		if err != nil {
			return err
		}
		if err := tx.Rents().Delete(ctx, id); err != nil {
			return err
		}
		if err := recomputeDress(ctx, tx, dress, today); err != nil {
			return err
		}
		return recomputeCustomerBusy(ctx, tx, rent.CustomerID, today)
	})
}

func (s *rentalService) GetRent(ctx context.Context, id int32) (*domain.Rent, error) {
	return s.store.Rents().GetByID(ctx, id)
}

func (s *rentalService) ListRents(ctx context.Context, page, pageSize int32) ([]domain.Rent, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.store.Rents().List(ctx, page, pageSize)
}
