package service

import (
	"context"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
)

type AddDressInput struct {
	Size        int32  `json:"size"`
	Color       string `json:"color"`
	Style       string `json:"style"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	Cost        int32  `json:"cost"`
	MarketPrice int32  `json:"market_price"`
	RentPrice   int32  `json:"rent_price"`
}

type AddCustomerInput struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type CreateRentInput struct {
	DressID       int32     `json:"dress_id"`
	CustomerID    int32     `json:"customer_id"`
	RentDate      time.Time `json:"rent_date"`
	PaymentMethod string    `json:"payment_method"`
}

type CreateMaintenanceInput struct {
	DressIDs []int32   `json:"dress_ids"`
	Date     time.Time `json:"date"`
	Type     string    `json:"maintenance_type"`
	Cost     int32     `json:"cost"`
}

type CreateSaleInput struct {
	DressID    int32     `json:"dress_id"`
	CustomerID int32     `json:"customer_id"`
	SaleDate   time.Time `json:"sale_date"`
	SalePrice  int32     `json:"sale_price"`
}

// ReconcileSummary reports one reconciliation pass. Failed entities are
// logged and skipped rather than aborting the batch.
type ReconcileSummary struct {
	Processed int32 `json:"processed"`
	Failed    int32 `json:"failed"`
}

type InventoryService interface {
	AddDress(ctx context.Context, input AddDressInput) (*domain.Dress, error)
	GetDress(ctx context.Context, id int32) (*domain.Dress, error)
	DeleteDress(ctx context.Context, id int32) error
	// ListDresses reconciles the inventory before reading so time-based
	// returns are reflected in the listing.
	ListDresses(ctx context.Context, filter repository.DressFilter, page, pageSize int32) ([]domain.Dress, int32, error)
	DressRents(ctx context.Context, dressID int32) ([]domain.Rent, error)
	DressMaintenances(ctx context.Context, dressID int32) ([]domain.Maintenance, error)
	DressSale(ctx context.Context, dressID int32) (*domain.Sale, error)
	SetImagePath(ctx context.Context, id int32, path string) error
}

type RentalService interface {
	CreateRent(ctx context.Context, input CreateRentInput) (*domain.Rent, error)
	DeleteRent(ctx context.Context, id int32) error
	GetRent(ctx context.Context, id int32) (*domain.Rent, error)
	ListRents(ctx context.Context, page, pageSize int32) ([]domain.Rent, int32, error)
}

type MaintenanceService interface {
	CreateMaintenance(ctx context.Context, input CreateMaintenanceInput) (*domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id int32) error
	GetMaintenance(ctx context.Context, id int32) (*domain.Maintenance, error)
	ListMaintenances(ctx context.Context, page, pageSize int32) ([]domain.Maintenance, int32, error)
}

type SaleService interface {
	CreateSale(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	GetSale(ctx context.Context, id int32) (*domain.Sale, error)
	ListSales(ctx context.Context, page, pageSize int32) ([]domain.Sale, int32, error)
}

type CustomerService interface {
	AddCustomer(ctx context.Context, input AddCustomerInput) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int32) error
	ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
}

type ReconcileService interface {
	ReconcileInventory(ctx context.Context) (ReconcileSummary, error)
	ReconcileCustomers(ctx context.Context) (ReconcileSummary, error)
}

type ReportService interface {
	MonthlyRents(ctx context.Context) ([]domain.MonthlyRentStat, error)
	TopCustomers(ctx context.Context, limit int32) ([]domain.CustomerRentStat, error)
	CostsVsEarnings(ctx context.Context) ([]domain.MonthlyMoneyStat, error)
	RentsByWeekday(ctx context.Context) ([]domain.WeekdayRentStat, error)
}
