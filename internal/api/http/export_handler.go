package http

import (
	"context"
	"fmt"
	"net/http"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/export"
	"cordelia-backend/internal/repository"
)

const exportBatchSize = 500

// ExportHandler streams full tables as CSV downloads
type ExportHandler struct {
	store repository.Store
}

func NewExportHandler(store repository.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

func setCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func (h *ExportHandler) Dresses(w http.ResponseWriter, r *http.Request) {
	dresses, err := collectAll(r.Context(), func(ctx context.Context, page, pageSize int32) ([]domain.Dress, int32, error) {
		return h.store.Dresses().List(ctx, repository.DressFilter{}, page, pageSize)
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	setCSVHeaders(w, "dresses.csv")
	export.WriteDresses(w, dresses)
}

func (h *ExportHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := collectAll(r.Context(), h.store.Customers().List)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setCSVHeaders(w, "customers.csv")
	export.WriteCustomers(w, customers)
}

func (h *ExportHandler) Rents(w http.ResponseWriter, r *http.Request) {
	rents, err := collectAll(r.Context(), h.store.Rents().List)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setCSVHeaders(w, "rents.csv")
	export.WriteRents(w, rents)
}

func (h *ExportHandler) Maintenances(w http.ResponseWriter, r *http.Request) {
	maintenances, err := collectAll(r.Context(), h.store.Maintenances().List)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setCSVHeaders(w, "maintenances.csv")
	export.WriteMaintenances(w, maintenances)
}

func (h *ExportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	sales, err := collectAll(r.Context(), h.store.Sales().List)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setCSVHeaders(w, "sales.csv")
	export.WriteSales(w, sales)
}

// collectAll pages through a listing until every row is gathered
func collectAll[T any](ctx context.Context, list func(ctx context.Context, page, pageSize int32) ([]T, int32, error)) ([]T, error) {
	var all []T
	for page := int32(1); ; page++ {
		items, total, err := list(ctx, page, exportBatchSize)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) == 0 || int32(len(all)) >= total {
			return all, nil
		}
	}
}
