package http

import (
	"net/http"

	"cordelia-backend/internal/service"
)

// ReportHandler serves the aggregate report endpoints
type ReportHandler struct {
	reports   service.ReportService
	reconcile service.ReconcileService
}

func NewReportHandler(reports service.ReportService, reconcile service.ReconcileService) *ReportHandler {
	return &ReportHandler{reports: reports, reconcile: reconcile}
}

func (h *ReportHandler) MonthlyRents(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.MonthlyRents(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.TopCustomers(r.Context(), queryInt32(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) CostsVsEarnings(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.CostsVsEarnings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) RentsByWeekday(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.RentsByWeekday(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Reconcile runs both reconciliation passes on demand
func (h *ReportHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.reconcile.ReconcileInventory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	customers, err := h.reconcile.ReconcileCustomers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]service.ReconcileSummary{
		"inventory": inventory,
		"customers": customers,
	})
}
