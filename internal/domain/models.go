package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoContacts is returned when a client is constructed without any contact
var ErrNoContacts = errors.New("client requires at least one contact")

// ClientType represents whether a client is a household or a business
type ClientType string

const (
	ClientTypeResidential ClientType = "residential"
	ClientTypeCommercial  ClientType = "commercial"
)

// ClientStatus represents the lifecycle status of a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusLead     ClientStatus = "lead"
)

// IsValid checks if the status is a valid ClientStatus value
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusLead:
		return true
	}
	return false
}

// Contact is a person reachable at a client
type Contact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"isPrimary"`
}

// Address is a service location
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Client represents a customer of the cleaning business
type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ClientType   `json:"type"`
	Status      ClientStatus `json:"status"`
	Contacts    []Contact    `json:"contacts"`
	Addresses   []Address    `json:"addresses"`
	Tags        []string     `json:"tags"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	LastService string       `json:"lastService,omitempty"`
}

// NewClient builds a client and enforces that it has at least one contact.
// A missing status defaults to active.
func NewClient(id, name string, clientType ClientType, contacts []Contact, addresses []Address, tags []string, createdAt time.Time) (*Client, error) {
	if len(contacts) == 0 {
		return nil, ErrNoContacts
	}
	return &Client{
		ID:        id,
		Name:      name,
		Type:      clientType,
		Status:    ClientStatusActive,
		Contacts:  contacts,
		Addresses: addresses,
		Tags:      tags,
		CreatedAt: createdAt,
	}, nil
}

// PrimaryContact returns the contact flagged primary, falling back to the first contact
func (c *Client) PrimaryContact() Contact {
	for _, contact := range c.Contacts {
		if contact.IsPrimary {
			return contact
		}
	}
	return c.Contacts[0]
}

// PrimaryAddress returns the first address, or a zero Address if none is on file
func (c *Client) PrimaryAddress() Address {
	if len(c.Addresses) == 0 {
		return Address{}
	}
	return c.Addresses[0]
}

// HasTag reports whether the client carries the tag, ignoring case
func (c *Client) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// JobStatus represents the state of a scheduled job
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// IsValid checks if the status is a valid JobStatus value
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// RecurringCadence represents how often a job repeats
type RecurringCadence string

const (
	RecurringNone     RecurringCadence = "none"
	RecurringWeekly   RecurringCadence = "weekly"
	RecurringBiweekly RecurringCadence = "biweekly"
	RecurringMonthly  RecurringCadence = "monthly"
)

// Job is a single scheduled cleaning visit
type Job struct {
	ID               string           `json:"id"`
	ClientID         string           `json:"clientId"`
	ClientName       string           `json:"clientName"`
	ServiceID        string           `json:"serviceId"`
	Status           JobStatus        `json:"status"`
	Date             string           `json:"date"`
	StartTime        string           `json:"startTime"`
	EndTime          string           `json:"endTime"`
	AssignedStaffIDs []string         `json:"assignedStaffIds"`
	Address          Address          `json:"address"`
	Notes            string           `json:"notes,omitempty"`
	NeedsFollowUp    bool             `json:"needsFollowUp"`
	Recurring        RecurringCadence `json:"recurring"`
	Price            decimal.Decimal  `json:"price"`
}

// IsUnassigned reports whether no staff member is assigned to the job
func (j *Job) IsUnassigned() bool {
	return len(j.AssignedStaffIDs) == 0
}

// StaffRole represents the role of a staff member
type StaffRole string

const (
	StaffRoleAdmin      StaffRole = "admin"
	StaffRoleSupervisor StaffRole = "supervisor"
	StaffRoleCleaner    StaffRole = "cleaner"
)

// StaffStatus represents the employment status of a staff member
type StaffStatus string

const (
	StaffStatusActive     StaffStatus = "active"
	StaffStatusOnLeave    StaffStatus = "on-leave"
	StaffStatusTerminated StaffStatus = "terminated"
)

// AvailabilityWindow is the working window for one weekday, as "HH:MM" strings.
// An empty Start or End means the staff member is not available that day.
type AvailabilityWindow struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// StaffMember is an employee who can be assigned to jobs
type StaffMember struct {
	ID           string                        `json:"id"`
	Name         string                        `json:"name"`
	Email        string                        `json:"email"`
	Phone        string                        `json:"phone"`
	Role         StaffRole                     `json:"role"`
	Skills       []string                      `json:"skills"`
	Availability map[string]AvailabilityWindow `json:"availability"`
	Status       StaffStatus                   `json:"status"`
	HourlyRate   decimal.Decimal               `json:"hourlyRate"`
}

// HasSkill reports whether the staff member lists the skill, ignoring case
func (s *StaffMember) HasSkill(skill string) bool {
	for _, sk := range s.Skills {
		if strings.EqualFold(sk, skill) {
			return true
		}
	}
	return false
}

// Service is an entry in the service catalog
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	DurationMinutes int             `json:"durationMinutes"`
	Active          bool            `json:"active"`
}

// InvoiceStatus represents the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a bill issued to a client
type Invoice struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId"`
	Number     string          `json:"number"`
	IssueDate  string          `json:"issueDate"`
	DueDate    string          `json:"dueDate"`
	Amount     decimal.Decimal `json:"amount"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Status     InvoiceStatus   `json:"status"`
}

// Outstanding returns the unpaid part of the invoice, never negative.
// Drafts have not been billed yet and count as nothing outstanding.
func (i *Invoice) Outstanding() decimal.Decimal {
	if i.Status == InvoiceStatusDraft {
		return decimal.Zero
	}
	rest := i.Amount.Sub(i.AmountPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// Expense is a business cost
type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayrollEntry is the pay for one staff member over one period
type PayrollEntry struct {
	ID          string          `json:"id"`
	StaffID     string          `json:"staffId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	Hours       decimal.Decimal `json:"hours"`
	Rate        decimal.Decimal `json:"rate"`
}

// Gross returns hours multiplied by rate
func (p *PayrollEntry) Gross() decimal.Decimal {
	return p.Hours.Mul(p.Rate)
}
