package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/repository"
)

type customerService struct {
	store repository.Store
	now   func() time.Time
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{
		store: store,
		now:   time.Now,
	}
}

func (s *customerService) AddCustomer(ctx context.Context, input AddCustomerInput) (*domain.Customer, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, fmt.Errorf("%w: name and last name are required", domain.ErrValidation)
	}

	customer := &domain.Customer{
		Email:       email,
		Name:        strings.TrimSpace(input.Name),
		LastName:    strings.TrimSpace(input.LastName),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		DateAdded:   s.now().UTC(),
	}
	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.store.Customers().GetByID(ctx, id)
}

// DeleteCustomer removes a customer together with their rent history. The
// customer must have no active rent, and customers with recorded sales are
// kept for bookkeeping. Dresses that referenced the deleted rents get their
// flags re-derived inside the same unit of work.
func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	today := lifecycle.DateOnly(s.now())
	return s.store.ExecTx(ctx, func(tx repository.Store) error {
		customer, err := tx.Customers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		rents, err := tx.Rents().ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		customer.RecomputeBusyStatus(rents, today)
		if customer.Busy {
			return fmt.Errorf("%w: customer %d has an active rent", domain.ErrGuardViolation, id)
		}
		sales, err := tx.Sales().ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if len(sales) > 0 {
			return fmt.Errorf("%w: customer %d has recorded sales", domain.ErrGuardViolation, id)
		}

		affected := make(map[int32]struct{}, len(rents))
		for _, rent := range rents {
			if err := tx.Rents().Delete(ctx, rent.ID); err != nil {
				return err
			}
			affected[rent.DressID] = struct{}{}
		}
		if err := tx.Customers().Delete(ctx, id); err != nil {
			return err
		}
		for dressID := range affected {
			dress, err := tx.Dresses().GetByIDForUpdate(ctx, dressID)
			if err != nil {
				return err
			}
			if err := recomputeDress(ctx, tx, dress, today); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.store.Customers().List(ctx, page, pageSize)
}
