package mapper

import (
	"time"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
)

// ToClientDTO converts Client to ClientDTO, filling the derived columns from the index facts
func ToClientDTO(client *domain.Client, facts query.ClientFacts) domain.ClientDTO {
	staff := facts.StaffIDs
	if staff == nil {
		staff = []string{}
	}
	tags := client.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.ClientDTO{
		ID:               client.ID,
		Name:             client.Name,
		Type:             client.Type,
		Status:           client.Status,
		PrimaryContact:   client.PrimaryContact(),
		Contacts:         client.Contacts,
		Addresses:        client.Addresses,
		Tags:             tags,
		Notes:            client.Notes,
		ClientSince:      client.CreatedAt.Format("2006-01-02T15:04:05Z"),
		LastService:      client.LastService,
		NextService:      facts.NextJobDate,
		Balance:          facts.Balance,
		BalanceStatus:    facts.BalanceStatus,
		AssignedStaffIDs: staff,
	}
}

// ToClient builds a Client from a create request. ID and CreatedAt are left
// for the repository to assign.
func ToClient(req *domain.CreateClientRequest) (*domain.Client, error) {
	contacts := make([]domain.Contact, len(req.Contacts))
	for i, c := range req.Contacts {
		contacts[i] = domain.Contact{Name: c.Name, Email: c.Email, Phone: c.Phone, IsPrimary: c.IsPrimary}
	}
	addresses := make([]domain.Address, len(req.Addresses))
	for i, a := range req.Addresses {
		addresses[i] = domain.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	client, err := domain.NewClient("", req.Name, req.Type, contacts, addresses, tags, time.Time{})
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		client.Status = req.Status
	}
	client.Notes = req.Notes
	return client, nil
}

// ToPayrollEntryDTO attaches the computed gross and the staff name
func ToPayrollEntryDTO(entry *domain.PayrollEntry, staffName string) domain.PayrollEntryDTO {
	return domain.PayrollEntryDTO{
		PayrollEntry: *entry,
		StaffName:    staffName,
		Gross:        entry.Gross(),
	}
}
