package http

import (
	"net/http"

	"cordelia-backend/internal/service"
)

// CustomerHandler serves the customer endpoints
type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input service.AddCustomerInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	customer, err := h.customers.AddCustomer(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryInt32(r, "page"), queryInt32(r, "page_size")
	customers, total, err := h.customers.ListCustomers(r.Context(), page, pageSize)
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
	writeJSON(w, http.StatusOK, pagedResponse{Items: customers, Total: total, Page: page, PageSize: pageSize})
}
