package repository

import (
	"context"

	"cordelia-backend/internal/domain"
)

// DressFilter narrows a dress listing. Zero values mean "no constraint".
type DressFilter struct {
	Color   string
	Brand   string
	Style   string
	Size    int32
	MinCost int32
	MaxCost int32
}

type DressRepository interface {
	Create(ctx context.Context, dress *domain.Dress) error
	GetByID(ctx context.Context, id int32) (*domain.Dress, error)
	// GetByIDForUpdate locks the dress row for the remainder of the enclosing
	// transaction, serializing guard-check-and-create against concurrent
	// writers.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Dress, error)
	// UpdateStatus persists the denormalized lifecycle fields: timesRented,
	// sellable, rentStatus, maintenanceStatus, sold.
	UpdateStatus(ctx context.Context, dress *domain.Dress) error
	UpdateImagePath(ctx context.Context, id int32, path string) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter DressFilter, page, pageSize int32) ([]domain.Dress, int32, error)
	ListIDs(ctx context.Context) ([]int32, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateBusy(ctx context.Context, id int32, busy bool) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
	ListIDs(ctx context.Context) ([]int32, error)
}

type RentRepository interface {
	Create(ctx context.Context, rent *domain.Rent) error
	GetByID(ctx context.Context, id int32) (*domain.Rent, error)
	Delete(ctx context.Context, id int32) error
	ListByDress(ctx context.Context, dressID int32) ([]domain.Rent, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rent, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Rent, int32, error)
}

type MaintenanceRepository interface {
	// Create inserts the maintenance record and its dress associations.
	Create(ctx context.Context, maintenance *domain.Maintenance) error
	GetByID(ctx context.Context, id int32) (*domain.Maintenance, error)
	Delete(ctx context.Context, id int32) error
	ListByDress(ctx context.Context, dressID int32) ([]domain.Maintenance, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Maintenance, int32, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id int32) (*domain.Sale, error)
	GetByDress(ctx context.Context, dressID int32) (*domain.Sale, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Sale, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Sale, int32, error)
}

type ReportRepository interface {
	MonthlyRents(ctx context.Context) ([]domain.MonthlyRentStat, error)
	TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerRentStat, error)
	CostsVsEarnings(ctx context.Context) ([]domain.MonthlyMoneyStat, error)
	RentsByWeekday(ctx context.Context) ([]domain.WeekdayRentStat, error)
}

// Store bundles the repositories over one database handle. ExecTx runs fn
// against a Store whose repositories share a single transaction; every
// command pairs its guard check, write, and status recomputation inside one
// such unit of work.
type Store interface {
	Dresses() DressRepository
	Customers() CustomerRepository
	Rents() RentRepository
	Maintenances() MaintenanceRepository
	Sales() SaleRepository
	Reports() ReportRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}
