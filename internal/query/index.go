package query

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidyhome/dashboard-api/internal/domain"
)

// ClientFacts are values derived from other records that the advanced client
// filters and the client columns need
type ClientFacts struct {
	// NextJobDate is the earliest scheduled job on or after today, "" if none
	NextJobDate   string
	StaffIDs      []string
	Balance       decimal.Decimal
	BalanceStatus domain.BalanceStatus
}

// ClientIndex maps client ID to derived facts. A client missing from the
// index has no jobs and no invoices.
type ClientIndex map[string]ClientFacts

// Facts returns the facts for a client, with a paid zero balance when absent
func (idx ClientIndex) Facts(clientID string) ClientFacts {
	if f, ok := idx[clientID]; ok {
		return f
	}
	return ClientFacts{Balance: decimal.Zero, BalanceStatus: domain.BalanceStatusPaid}
}

// BuildClientIndex derives per-client facts from jobs and invoices.
// today decides which jobs are upcoming and which invoices are past due.
func BuildClientIndex(jobs []domain.Job, invoices []domain.Invoice, today time.Time) ClientIndex {
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	idx := make(ClientIndex)
	next := make(map[string]time.Time)
	seenStaff := make(map[string]map[string]struct{})

	for i := range jobs {
		j := &jobs[i]
		f := idx.Facts(j.ClientID)

		if seenStaff[j.ClientID] == nil {
			seenStaff[j.ClientID] = make(map[string]struct{})
		}
		for _, sid := range j.AssignedStaffIDs {
			if _, dup := seenStaff[j.ClientID][sid]; !dup {
				seenStaff[j.ClientID][sid] = struct{}{}
				f.StaffIDs = append(f.StaffIDs, sid)
			}
		}

		if j.Status == domain.JobStatusScheduled {
			if day, ok := ParseDay(j.Date); ok && !day.Before(todayDay) {
				if cur, has := next[j.ClientID]; !has || day.Before(cur) {
					next[j.ClientID] = day
					f.NextJobDate = day.Format("2006-01-02")
				}
			}
		}
		idx[j.ClientID] = f
	}

	overdue := make(map[string]bool)
	for i := range invoices {
		inv := &invoices[i]
		f := idx.Facts(inv.ClientID)
		open := inv.Outstanding()
		f.Balance = f.Balance.Add(open)
		if open.IsPositive() {
			if inv.Status == domain.InvoiceStatusOverdue {
				overdue[inv.ClientID] = true
			} else if due, ok := ParseDay(inv.DueDate); ok && due.Before(todayDay) {
				overdue[inv.ClientID] = true
			}
		}
		idx[inv.ClientID] = f
	}

	for id, f := range idx {
		switch {
		case overdue[id]:
			f.BalanceStatus = domain.BalanceStatusOverdue
		case f.Balance.IsPositive():
			f.BalanceStatus = domain.BalanceStatusOutstanding
		default:
			f.BalanceStatus = domain.BalanceStatusPaid
		}
		idx[id] = f
	}
	return idx
}
