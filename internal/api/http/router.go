package http

import (
	"net/http"

	"cordelia-backend/internal/config"
	"cordelia-backend/internal/repository"
	"cordelia-backend/internal/service"
	"cordelia-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP surface depends on
type Services struct {
	Inventory   service.InventoryService
	Rental      service.RentalService
	Maintenance service.MaintenanceService
	Sale        service.SaleService
	Customer    service.CustomerService
	Reconcile   service.ReconcileService
	Report      service.ReportService
	Store       repository.Store
	Images      storage.ImageStorage
}

// NewRouter builds the full route table
func NewRouter(services *Services, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware)

	inventory := NewInventoryHandler(services.Inventory, services.Images, cfg.Storage.MaxFileSize)
	customers := NewCustomerHandler(services.Customer)
	transactions := NewTransactionHandler(services.Rental, services.Maintenance, services.Sale)
	reports := NewReportHandler(services.Report, services.Reconcile)
	exports := NewExportHandler(services.Store)

	api := router.PathPrefix("/api").Subrouter()

	// Inventory
	api.HandleFunc("/inventory/dresses", inventory.CreateDress).Methods(http.MethodPost)
	api.HandleFunc("/inventory/dresses", inventory.ListDresses).Methods(http.MethodGet)
	api.HandleFunc("/inventory/dresses/search", inventory.ListDresses).Methods(http.MethodGet)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}", inventory.GetDress).Methods(http.MethodGet)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}", inventory.DeleteDress).Methods(http.MethodDelete)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}/rents", inventory.DressRents).Methods(http.MethodGet)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}/maintenances", inventory.DressMaintenances).Methods(http.MethodGet)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}/sale", inventory.DressSale).Methods(http.MethodGet)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}/image", inventory.UploadImage).Methods(http.MethodPost, http.MethodPut)
	api.HandleFunc("/inventory/dresses/{id:[0-9]+}/image", inventory.DownloadImage).Methods(http.MethodGet)

	// Customers
	api.HandleFunc("/customers", customers.CreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers", customers.ListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.GetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", customers.DeleteCustomer).Methods(http.MethodDelete)

	// Transactions
	api.HandleFunc("/transactions/rents", transactions.CreateRent).Methods(http.MethodPost)
	api.HandleFunc("/transactions/rents", transactions.ListRents).Methods(http.MethodGet)
	api.HandleFunc("/transactions/rents/{id:[0-9]+}", transactions.GetRent).Methods(http.MethodGet)
	api.HandleFunc("/transactions/rents/{id:[0-9]+}", transactions.DeleteRent).Methods(http.MethodDelete)
	api.HandleFunc("/transactions/maintenances", transactions.CreateMaintenance).Methods(http.MethodPost)
	api.HandleFunc("/transactions/maintenances", transactions.ListMaintenances).Methods(http.MethodGet)
	api.HandleFunc("/transactions/maintenances/{id:[0-9]+}", transactions.GetMaintenance).Methods(http.MethodGet)
	api.HandleFunc("/transactions/maintenances/{id:[0-9]+}", transactions.DeleteMaintenance).Methods(http.MethodDelete)
	api.HandleFunc("/transactions/sales", transactions.CreateSale).Methods(http.MethodPost)
	api.HandleFunc("/transactions/sales", transactions.ListSales).Methods(http.MethodGet)
	api.HandleFunc("/transactions/sales/{id:[0-9]+}", transactions.GetSale).Methods(http.MethodGet)

	// Reports
	api.HandleFunc("/reports/monthly-rents", reports.MonthlyRents).Methods(http.MethodGet)
	api.HandleFunc("/reports/top-customers", reports.TopCustomers).Methods(http.MethodGet)
	api.HandleFunc("/reports/costs-vs-earnings", reports.CostsVsEarnings).Methods(http.MethodGet)
	api.HandleFunc("/reports/rents-by-weekday", reports.RentsByWeekday).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/reconcile", reports.Reconcile).Methods(http.MethodPost)

	// Exports
	api.HandleFunc("/export/dresses.csv", exports.Dresses).Methods(http.MethodGet)
	api.HandleFunc("/export/customers.csv", exports.Customers).Methods(http.MethodGet)
	api.HandleFunc("/export/rents.csv", exports.Rents).Methods(http.MethodGet)
	api.HandleFunc("/export/maintenances.csv", exports.Maintenances).Methods(http.MethodGet)
	api.HandleFunc("/export/sales.csv", exports.Sales).Methods(http.MethodGet)

	// Health
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}
