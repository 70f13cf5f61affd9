package service

import (
	"context"
	"testing"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateRent_Success(t *testing.T) {
	st := newFakeStore()
	svc := &rentalService{store: st, rules: lifecycle.DefaultRules(), now: fixedNow(date(2024, 1, 1))}

	dress := &domain.Dress{ID: 7, RentPrice: 1800}
	customer := &domain.Customer{ID: 3}

	st.customers.On("GetByID", mock.Anything, int32(3)).Return(customer, nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(dress, nil)
	st.rents.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rent")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Rent).ID = 42
		}).Return(nil)
	st.rents.On("ListByDress", mock.Anything, int32(7)).Return([]domain.Rent{
		{ID: 42, DressID: 7, CustomerID: 3, RentDate: date(2024, 1, 1), ReturnDate: date(2024, 1, 4)},
	}, nil)
	st.maintenances.On("ListByDress", mock.Anything, int32(7)).Return([]domain.Maintenance{}, nil)
	st.dresses.On("UpdateStatus", mock.Anything, dress).Return(nil)
	st.rents.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Rent{
		{ID: 42, DressID: 7, CustomerID: 3, RentDate: date(2024, 1, 1), ReturnDate: date(2024, 1, 4)},
	}, nil)
	st.customers.On("UpdateBusy", mock.Anything, int32(3), true).Return(nil)

	rent, err := svc.CreateRent(context.Background(), CreateRentInput{
		DressID:       7,
		CustomerID:    3,
		RentDate:      date(2024, 1, 1),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, date(2024, 1, 4), rent.ReturnDate)
	assert.Equal(t, int32(2088), rent.PaymentTotal)
	assert.True(t, dress.RentStatus)
	assert.Equal(t, int32(1), dress.TimesRented)
	st.assertExpectations(t)
}

func TestCreateRent_DressUnavailable(t *testing.T) {
	st := newFakeStore()
	svc := &rentalService{store: st, rules: lifecycle.DefaultRules(), now: fixedNow(date(2024, 1, 1))}

	dress := &domain.Dress{ID: 7, RentPrice: 1800, MaintenanceStatus: true}
	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(dress, nil)

	_, err := svc.CreateRent(context.Background(), CreateRentInput{
		DressID:    7,
		CustomerID: 3,
		RentDate:   date(2024, 1, 1),
	})
	require.ErrorIs(t, err, domain.ErrGuardViolation)
	st.rents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRent_MissingRentDate(t *testing.T) {
	st := newFakeStore()
	svc := &rentalService{store: st, rules: lifecycle.DefaultRules(), now: fixedNow(date(2024, 1, 1))}

	_, err := svc.CreateRent(context.Background(), CreateRentInput{DressID: 7, CustomerID: 3})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateRent_CustomerNotFound(t *testing.T) {
	st := newFakeStore()
	svc := &rentalService{store: st, rules: lifecycle.DefaultRules(), now: fixedNow(date(2024, 1, 1))}

	st.customers.On("GetByID", mock.Anything, int32(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.CreateRent(context.Background(), CreateRentInput{
		DressID:    7,
		CustomerID: 99,
		RentDate:   date(2024, 1, 1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	st.dresses.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
}

func TestDeleteRent_StillActive(t *testing.T) {
	st := newFakeStore()
	svc := &rentalService{store: st, rules: lifecycle.DefaultRules(), now: fixedNow(date(2024, 1, 3))}

	st.rents.On("GetByID", mock.Anything, int32(42)).Return(&domain.Rent{
		ID: 42, DressID: 7, CustomerID: 3,
		RentDate: date(2024, 1, 1), ReturnDate: date(2024, 1, 4),
	}, nil)

	err := svc.DeleteRent(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrGuardViolation)
	st.rents.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteRent_Returned(t *testing.T) {
	st := newFakeStore()
	svc := &rentalService{store: st, rules: lifecycle.DefaultRules(), now: fixedNow(date(2024, 1, 10))}

	dress := &domain.Dress{ID: 7, RentStatus: false, TimesRented: 1}
	st.rents.On("GetByID", mock.Anything, int32(42)).Return(&domain.Rent{
		ID: 42, DressID: 7, CustomerID: 3,
		RentDate: date(2024, 1, 1), ReturnDate: date(2024, 1, 4),
	}, nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(dress, nil)
	st.rents.On("Delete", mock.Anything, int32(42)).Return(nil)
	st.rents.On("ListByDress", mock.Anything, int32(7)).Return([]domain.Rent{}, nil)
	st.maintenances.On("ListByDress", mock.Anything, int32(7)).Return([]domain.Maintenance{}, nil)
	st.dresses.On("UpdateStatus", mock.Anything, dress).Return(nil)
	st.rents.On("ListByCustomer", mock.Anything, int32(3)).Return([]domain.Rent{}, nil)
	st.customers.On("UpdateBusy", mock.Anything, int32(3), false).Return(nil)

	err := svc.DeleteRent(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int32(0), dress.TimesRented)
	st.assertExpectations(t)
}
