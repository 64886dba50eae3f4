// Package seed loads the static demo data set the dashboard runs on.
// Seed files are JSON with comments and trailing commas (JWCC).
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
	"github.com/tidyhome/dashboard-api/internal/domain"
)

//go:embed seed.jsonc
var defaultSeed []byte

// Dataset is the full set of records loaded at startup
type Dataset struct {
	Clients  []domain.Client       `json:"clients"`
	Jobs     []domain.Job          `json:"jobs"`
	Staff    []domain.StaffMember  `json:"staff"`
	Services []domain.Service      `json:"services"`
	Invoices []domain.Invoice      `json:"invoices"`
	Expenses []domain.Expense      `json:"expenses"`
	Payroll  []domain.PayrollEntry `json:"payroll"`
}

// Default returns the embedded demo data set
func Default() (*Dataset, error) {
	return Parse(defaultSeed)
}

// LoadFile reads a seed file from disk. An empty path loads the embedded data.
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a seed document
func Parse(data []byte) (*Dataset, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(std, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	seen := make(map[string]bool, len(ds.Clients))
	for i := range ds.Clients {
		c := &ds.Clients[i]
		if c.ID == "" {
			return fmt.Errorf("client at index %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate client id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Contacts) == 0 {
			return fmt.Errorf("client %q: %w", c.ID, domain.ErrNoContacts)
		}
		if c.Status == "" {
			c.Status = domain.ClientStatusActive
		}
	}

	for i := range ds.Jobs {
		j := &ds.Jobs[i]
		if !j.Status.IsValid() {
			return fmt.Errorf("job %q has invalid status %q", j.ID, j.Status)
		}
		if j.AssignedStaffIDs == nil {
			j.AssignedStaffIDs = []string{}
		}
		if j.Recurring == "" {
			j.Recurring = domain.RecurringNone
		}
	}
	return nil
}
