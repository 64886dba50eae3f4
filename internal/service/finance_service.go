package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/mapper"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"go.uber.org/zap"
)

// FinanceService reads invoices, expenses and payroll and rolls them up
type FinanceService struct {
	financeRepo *repository.FinanceRepository
	staffRepo   *repository.StaffRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewFinanceService(
	financeRepo *repository.FinanceRepository,
	staffRepo *repository.StaffRepository,
	now func() time.Time,
	logger *zap.Logger,
) *FinanceService {
	return &FinanceService{
		financeRepo: financeRepo,
		staffRepo:   staffRepo,
		now:         now,
		logger:      logger,
	}
}

// Invoices lists invoices, narrowed by status and client when set
func (s *FinanceService) Invoices(status, clientID string) []domain.Invoice {
	invoices := s.financeRepo.Invoices()
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && status != domain.FilterAll && string(inv.Status) != status {
			continue
		}
		if clientID != "" && inv.ClientID != clientID {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// Expenses lists expenses, narrowed by category when set
func (s *FinanceService) Expenses(category string) []domain.Expense {
	expenses := s.financeRepo.Expenses()
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if category != "" && category != domain.FilterAll && !strings.EqualFold(e.Category, category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Payroll lists payroll entries with gross pay and staff names, narrowed by staff member when set
func (s *FinanceService) Payroll(staffID string) []domain.PayrollEntryDTO {
	names := make(map[string]string)
	for _, m := range s.staffRepo.List() {
		names[m.ID] = m.Name
	}

	entries := s.financeRepo.Payroll()
	out := make([]domain.PayrollEntryDTO, 0, len(entries))
	for i := range entries {
		if staffID != "" && entries[i].StaffID != staffID {
			continue
		}
		out = append(out, mapper.ToPayrollEntryDTO(&entries[i], names[entries[i].StaffID]))
	}
	return out
}

// Summary totals the finance records. Drafts are not billed. An invoice is
// overdue when flagged so or past its due date with money still open.
func (s *FinanceService) Summary() domain.FinanceSummaryDTO {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	sum := domain.FinanceSummaryDTO{
		Billed:      decimal.Zero,
		Collected:   decimal.Zero,
		Outstanding: decimal.Zero,
		Overdue:     decimal.Zero,
		Expenses:    decimal.Zero,
		Payroll:     decimal.Zero,
	}

	for _, inv := range s.financeRepo.Invoices() {
		if inv.Status == domain.InvoiceStatusDraft {
			continue
		}
		sum.Billed = sum.Billed.Add(inv.Amount)
		sum.Collected = sum.Collected.Add(inv.AmountPaid)
		open := inv.Outstanding()
		sum.Outstanding = sum.Outstanding.Add(open)
		if !open.IsPositive() {
			continue
		}
		if inv.Status == domain.InvoiceStatusOverdue {
			sum.Overdue = sum.Overdue.Add(open)
		} else if due, ok := query.ParseDay(inv.DueDate); ok && due.Before(today) {
			sum.Overdue = sum.Overdue.Add(open)
		}
	}
	for _, e := range s.financeRepo.Expenses() {
		sum.Expenses = sum.Expenses.Add(e.Amount)
	}
	for _, p := range s.financeRepo.Payroll() {
		sum.Payroll = sum.Payroll.Add(p.Gross())
	}
	sum.Net = sum.Collected.Sub(sum.Expenses).Sub(sum.Payroll)
	return sum
}
