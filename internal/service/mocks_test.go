package service

import (
	"context"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockDressRepo
type MockDressRepo struct {
	mock.Mock
}

func (m *MockDressRepo) Create(ctx context.Context, dress *domain.Dress) error {
	args := m.Called(ctx, dress)
	return args.Error(0)
}
func (m *MockDressRepo) GetByID(ctx context.Context, id int32) (*domain.Dress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dress), args.Error(1)
}
func (m *MockDressRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Dress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dress), args.Error(1)
}
func (m *MockDressRepo) UpdateStatus(ctx context.Context, dress *domain.Dress) error {
	args := m.Called(ctx, dress)
	return args.Error(0)
}
func (m *MockDressRepo) UpdateImagePath(ctx context.Context, id int32, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}
func (m *MockDressRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDressRepo) List(ctx context.Context, filter repository.DressFilter, page, pageSize int32) ([]domain.Dress, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Dress), args.Get(1).(int32), args.Error(2)
}
func (m *MockDressRepo) ListIDs(ctx context.Context) ([]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int32), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) UpdateBusy(ctx context.Context, id int32, busy bool) error {
	args := m.Called(ctx, id, busy)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerRepo) ListIDs(ctx context.Context) ([]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int32), args.Error(1)
}

// MockRentRepo
type MockRentRepo struct {
	mock.Mock
}

func (m *MockRentRepo) Create(ctx context.Context, rent *domain.Rent) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}
func (m *MockRentRepo) GetByID(ctx context.Context, id int32) (*domain.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentRepo) ListByDress(ctx context.Context, dressID int32) ([]domain.Rent, error) {
	args := m.Called(ctx, dressID)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rent, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Rent, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Rent), args.Get(1).(int32), args.Error(2)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, maintenance *domain.Maintenance) error {
	args := m.Called(ctx, maintenance)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListByDress(ctx context.Context, dressID int32) ([]domain.Maintenance, error) {
	args := m.Called(ctx, dressID)
	return args.Get(0).([]domain.Maintenance), args.Error(1)
}
func (m *MockMaintenanceRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Maintenance, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Maintenance), args.Get(1).(int32), args.Error(2)
}

// MockSaleRepo
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
func (m *MockSaleRepo) GetByID(ctx context.Context, id int32) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) GetByDress(ctx context.Context, dressID int32) (*domain.Sale, error) {
	args := m.Called(ctx, dressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Sale, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Sale, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Sale), args.Get(1).(int32), args.Error(2)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) MonthlyRents(ctx context.Context) ([]domain.MonthlyRentStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MonthlyRentStat), args.Error(1)
}
func (m *MockReportRepo) TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerRentStat, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.CustomerRentStat), args.Error(1)
}
func (m *MockReportRepo) CostsVsEarnings(ctx context.Context) ([]domain.MonthlyMoneyStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MonthlyMoneyStat), args.Error(1)
}
func (m *MockReportRepo) RentsByWeekday(ctx context.Context) ([]domain.WeekdayRentStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WeekdayRentStat), args.Error(1)
}

// fakeStore satisfies repository.Store over the mocks. ExecTx hands the same
// store back to fn, so the service's transactional path runs against the
// mocks directly.
type fakeStore struct {
	dresses      *MockDressRepo
	customers    *MockCustomerRepo
	rents        *MockRentRepo
	maintenances *MockMaintenanceRepo
	sales        *MockSaleRepo
	reports      *MockReportRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		dresses:      new(MockDressRepo),
		customers:    new(MockCustomerRepo),
		rents:        new(MockRentRepo),
		maintenances: new(MockMaintenanceRepo),
		sales:        new(MockSaleRepo),
		reports:      new(MockReportRepo),
	}
}

func (s *fakeStore) Dresses() repository.DressRepository             { return s.dresses }
func (s *fakeStore) Customers() repository.CustomerRepository        { return s.customers }
func (s *fakeStore) Rents() repository.RentRepository                { return s.rents }
func (s *fakeStore) Maintenances() repository.MaintenanceRepository  { return s.maintenances }
func (s *fakeStore) Sales() repository.SaleRepository                { return s.sales }
func (s *fakeStore) Reports() repository.ReportRepository            { return s.reports }
func (s *fakeStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *fakeStore) assertExpectations(t mock.TestingT) {
	s.dresses.AssertExpectations(t)
	s.customers.AssertExpectations(t)
	s.rents.AssertExpectations(t)
	s.maintenances.AssertExpectations(t)
	s.sales.AssertExpectations(t)
	s.reports.AssertExpectations(t)
}
