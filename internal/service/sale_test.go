package service

import (
	"context"
	"testing"

	"cordelia-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSale_Success(t *testing.T) {
	st := newFakeStore()
	svc := &saleService{store: st, now: fixedNow(date(2024, 5, 20))}

	dress := &domain.Dress{ID: 7, Cost: 3000, Sellable: true, TimesRented: 4}
	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(dress, nil)
	st.sales.On("Create", mock.Anything, mock.AnythingOfType("*domain.Sale")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Sale).ID = 11
		}).Return(nil)
	st.dresses.On("UpdateStatus", mock.Anything, dress).Return(nil)

	sale, err := svc.CreateSale(context.Background(), CreateSaleInput{
		DressID:    7,
		CustomerID: 3,
		SaleDate:   date(2024, 5, 20),
		SalePrice:  2100,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(11), sale.ID)
	assert.True(t, dress.Sold)
	st.assertExpectations(t)
}

func TestCreateSale_DressAlreadySold(t *testing.T) {
	st := newFakeStore()
	svc := &saleService{store: st, now: fixedNow(date(2024, 5, 20))}

	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(&domain.Dress{ID: 7, Sold: true}, nil)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		DressID:    7,
		CustomerID: 3,
		SaleDate:   date(2024, 5, 20),
		SalePrice:  2100,
	})
	require.ErrorIs(t, err, domain.ErrGuardViolation)
	st.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSale_DressRented(t *testing.T) {
	st := newFakeStore()
	svc := &saleService{store: st, now: fixedNow(date(2024, 5, 20))}

	st.customers.On("GetByID", mock.Anything, int32(3)).Return(&domain.Customer{ID: 3}, nil)
	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(&domain.Dress{ID: 7, RentStatus: true}, nil)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		DressID:    7,
		CustomerID: 3,
		SaleDate:   date(2024, 5, 20),
		SalePrice:  2100,
	})
	require.ErrorIs(t, err, domain.ErrGuardViolation)
}

func TestCreateSale_NegativePrice(t *testing.T) {
	st := newFakeStore()
	svc := &saleService{store: st, now: fixedNow(date(2024, 5, 20))}

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		DressID:    7,
		CustomerID: 3,
		SaleDate:   date(2024, 5, 20),
		SalePrice:  -1,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}
