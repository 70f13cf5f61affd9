package service

import (
	"context"
	"testing"

	"cordelia-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCustomer_Success(t *testing.T) {
	st := newFakeStore()
	svc := &customerService{store: st, now: fixedNow(date(2024, 2, 1))}

	st.customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = 3
		}).Return(nil)

	customer, err := svc.AddCustomer(context.Background(), AddCustomerInput{
		Email:       "  ana@example.com ",
		Name:        "Ana",
		LastName:    "Torres",
		PhoneNumber: "5551234",
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), customer.ID)
	assert.Equal(t, "ana@example.com", customer.Email)
	assert.False(t, customer.Busy)
}

func TestAddCustomer_InvalidEmail(t *testing.T) {
	st := newFakeStore()
	svc := &customerService{store: st, now: fixedNow(date(2024, 2, 1))}

	_, err := svc.AddCustomer(context.Background(), AddCustomerInput{
		Email:    "not-an-email",
		Name:     "Ana",
		LastName: "Torres",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	st.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_ActiveRent(t *testing.T) {
	st := newFakeStore()
	svc := &customerService{store: st, now: fixedNow(date(2024, 1, 2))}

	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.rents.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Rent{
		{ID: 42, DressID: 7, CustomerID: 3, RentDate: date(2024, 1, 1), ReturnDate: date(2024, 1, 4)},
	}, nil)

	err := svc.DeleteCustomer(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrGuardViolation)
	st.customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_HasSales(t *testing.T) {
	st := newFakeStore()
	svc := &customerService{store: st, now: fixedNow(date(2024, 6, 1))}

	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.rents.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Rent{}, nil)
	st.sales.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Sale{
		{ID: 11, DressID: 7, CustomerID: 3, SaleDate: date(2024, 5, 20), SalePrice: 2100},
	}, nil)

	err := svc.DeleteCustomer(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrGuardViolation)
	st.customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_RemovesHistoryAndRecomputesDresses(t *testing.T) {
	st := newFakeStore()
	svc := &customerService{store: st, now: fixedNow(date(2024, 6, 1))}

	dress := &domain.Dress{ID: 7, TimesRented: 1}
	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.rents.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Rent{
		{ID: 42, DressID: 7, CustomerID: 3, RentDate: date(2024, 1, 1), ReturnDate: date(2024, 1, 4)},
	}, nil)
	st.sales.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Sale{}, nil)
	st.rents.On("Delete", mock.Anything, int32(42)).Return(nil)
	st.customers.On("Delete", mock.Anything, int32(3)).Return(nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(dress, nil)
	st.rents.On("ListByDress", mock.Anything, int32(7)).Return([]domain.Rent{}, nil)
	st.maintenances.On("ListByDress", mock.Anything, int32(7)).Return([]domain.Maintenance{}, nil)
	st.dresses.On("UpdateStatus", mock.Anything, dress).Return(nil)

	err := svc.DeleteCustomer(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int32(0), dress.TimesRented)
	st.assertExpectations(t)
}
