package service

import (
	"context"
	"testing"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddDress_FreezesRentsForReturns(t *testing.T) {
	st := newFakeStore()
	svc := &inventoryService{store: st, now: fixedNow(date(2024, 2, 1))}

	st.dresses.On("Create", mock.Anything, mock.AnythingOfType("*domain.Dress")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Dress).ID = 7
		}).Return(nil)

	dress, err := svc.AddDress(context.Background(), AddDressInput{
		Size:        8,
		Color:       "red",
		Style:       "gala",
		Brand:       "Vera",
		Cost:        4200,
		MarketPrice: 5000,
		RentPrice:   1800,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(2), dress.RentsForReturns)
	assert.False(t, dress.Sellable)
	assert.Equal(t, int32(0), dress.TimesRented)
}

func TestAddDress_ZeroRentPrice(t *testing.T) {
	st := newFakeStore()
	svc := &inventoryService{store: st, now: fixedNow(date(2024, 2, 1))}

	_, err := svc.AddDress(context.Background(), AddDressInput{
		Size:  8,
		Color: "red",
		Style: "gala",
		Brand: "Vera",
		Cost:  4200,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	st.dresses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteDress_ActiveRentBlocks(t *testing.T) {
	st := newFakeStore()
	svc := &inventoryService{store: st, now: fixedNow(date(2024, 2, 1))}

	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(&domain.Dress{ID: 7, RentStatus: true}, nil)

	err := svc.DeleteDress(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrGuardViolation)
	st.dresses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteDress_SoldBlocks(t *testing.T) {
	st := newFakeStore()
	svc := &inventoryService{store: st, now: fixedNow(date(2024, 2, 1))}

	st.dresses.On("GetByIDForUpdate", mock.Anything, int32(7)).Return(&domain.Dress{ID: 7, Sold: true}, nil)

	err := svc.DeleteDress(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrGuardViolation)
}

func TestListDresses_ReconcilesFirst(t *testing.T) {
	st := newFakeStore()
	reconcile := &reconcileService{store: st, now: fixedNow(date(2024, 2, 1))}
	svc := &inventoryService{store: st, reconcile: reconcile, now: fixedNow(date(2024, 2, 1))}

	st.dresses.On("ListIDs", mock.Anything).Return([]int32{}, nil)
	st.dresses.On("List", mock.Anything, mock.Anything, int32(1), int32(20)).
		Return([]domain.Dress{}, int32(0), nil)

	_, total, err := svc.ListDresses(context.Background(), repository.DressFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), total)
	st.dresses.AssertCalled(t, "ListIDs", mock.Anything)
}
