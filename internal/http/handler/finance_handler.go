package handler

import (
	"net/http"

	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

type FinanceHandler struct {
	financeService *service.FinanceService
	logger         *zap.Logger
}

func NewFinanceHandler(financeService *service.FinanceService, logger *zap.Logger) *FinanceHandler {
	return &FinanceHandler{financeService: financeService, logger: logger}
}

// Invoices GET /finance/invoices?status=&clientId=
func (h *FinanceHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	invoices := h.financeService.Invoices(q.Get("status"), q.Get("clientId"))
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": invoices, "total": len(invoices)})
}

// Expenses GET /finance/expenses?category=
func (h *FinanceHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.financeService.Expenses(r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": expenses, "total": len(expenses)})
}

// Payroll GET /finance/payroll?staffId=
func (h *FinanceHandler) Payroll(w http.ResponseWriter, r *http.Request) {
	entries := h.financeService.Payroll(r.URL.Query().Get("staffId"))
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": entries, "total": len(entries)})
}

// Summary GET /finance/summary
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.financeService.Summary())
}
