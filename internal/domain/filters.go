package domain

import "time"

// FilterAll is the sentinel value meaning "do not filter on this facet"
const FilterAll = "all"

// DateRange is an inclusive calendar date range. Either bound may be empty,
// and a bound that does not parse as a date is treated as absent.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// JobFilters is the faceted filter state for the job list.
// Facets combine with AND; set-valued facets match if any value matches.
type JobFilters struct {
	Status        string    `json:"status"`
	DateRange     DateRange `json:"dateRange"`
	StaffIDs      []string  `json:"staffIds,omitempty"`
	ServiceIDs    []string  `json:"serviceIds,omitempty"`
	ClientName    string    `json:"clientName,omitempty"`
	ZipCode       string    `json:"zipCode,omitempty"`
	HasNotes      bool      `json:"hasNotes"`
	NeedsFollowUp bool      `json:"needsFollowUp"`
	Unassigned    bool      `json:"unassigned"`
}

// Clone returns a deep copy so the caller can never alias the slices
func (f JobFilters) Clone() JobFilters {
	out := f
	out.StaffIDs = cloneStrings(f.StaffIDs)
	out.ServiceIDs = cloneStrings(f.ServiceIDs)
	return out
}

// BalanceStatus classifies a client's open invoices
type BalanceStatus string

const (
	BalanceStatusAll         BalanceStatus = "all"
	BalanceStatusPaid        BalanceStatus = "paid"
	BalanceStatusOutstanding BalanceStatus = "outstanding"
	BalanceStatusOverdue     BalanceStatus = "overdue"
)

// ClientAdvancedFilters holds the facets of the advanced client filter panel
type ClientAdvancedFilters struct {
	Tags             []string      `json:"tags,omitempty"`
	Status           string        `json:"status"`
	LastServiceRange DateRange     `json:"lastServiceRange"`
	NextJobRange     DateRange     `json:"nextJobRange"`
	BalanceStatus    BalanceStatus `json:"balanceStatus"`
	ZipCodes         []string      `json:"zipCodes,omitempty"`
	StaffIDs         []string      `json:"staffIds,omitempty"`
}

// Clone returns a deep copy of the filters
func (f ClientAdvancedFilters) Clone() ClientAdvancedFilters {
	out := f
	out.Tags = cloneStrings(f.Tags)
	out.ZipCodes = cloneStrings(f.ZipCodes)
	out.StaffIDs = cloneStrings(f.StaffIDs)
	return out
}

// ClientQuery is everything the client list can be filtered by
type ClientQuery struct {
	Type     string                `json:"type"`
	Search   string                `json:"search"`
	Advanced ClientAdvancedFilters `json:"advanced"`
}

// Clone returns a deep copy of the query
func (q ClientQuery) Clone() ClientQuery {
	out := q
	out.Advanced = q.Advanced.Clone()
	return out
}

// SavedView is a named, frozen job filter snapshot
type SavedView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	Filters   JobFilters `json:"filters"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// StaffFilters narrows the staff list. Day names a weekday ("monday"); From
// and To are "HH:MM" times the staff member must be available between on Day.
type StaffFilters struct {
	Role   string `json:"role"`
	Status string `json:"status"`
	Skill  string `json:"skill,omitempty"`
	Day    string `json:"day,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}
