package http

import (
	"net/http"

	"cordelia-backend/internal/service"
)

// TransactionHandler serves the rent, maintenance and sale endpoints
type TransactionHandler struct {
	rentals      service.RentalService
	maintenances service.MaintenanceService
	sales        service.SaleService
}

func NewTransactionHandler(rentals service.RentalService, maintenances service.MaintenanceService, sales service.SaleService) *TransactionHandler {
	return &TransactionHandler{
		rentals:      rentals,
		maintenances: maintenances,
		sales:        sales,
	}
}

func (h *TransactionHandler) CreateRent(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	rent, err := h.rentals.CreateRent(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rent)
}

func (h *TransactionHandler) GetRent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rent, err := h.rentals.GetRent(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rent)
}

func (h *TransactionHandler) DeleteRent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.rentals.DeleteRent(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TransactionHandler) ListRents(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryInt32(r, "page"), queryInt32(r, "page_size")
	rents, total, err := h.rentals.ListRents(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: rents, Total: total, Page: page, PageSize: pageSize})
}

func (h *TransactionHandler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var input service.CreateMaintenanceInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	maintenance, err := h.maintenances.CreateMaintenance(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, maintenance)
}

func (h *TransactionHandler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	maintenance, err := h.maintenances.GetMaintenance(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, maintenance)
}

func (h *TransactionHandler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.maintenances.DeleteMaintenance(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TransactionHandler) ListMaintenances(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryInt32(r, "page"), queryInt32(r, "page_size")
	maintenances, total, err := h.maintenances.ListMaintenances(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: maintenances, Total: total, Page: page, PageSize: pageSize})
}

func (h *TransactionHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var input service.CreateSaleInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	sale, err := h.sales.CreateSale(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (h *TransactionHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sale, err := h.sales.GetSale(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

func (h *TransactionHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryInt32(r, "page"), queryInt32(r, "page_size")
	sales, total, err := h.sales.ListSales(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: sales, Total: total, Page: page, PageSize: pageSize})
}
