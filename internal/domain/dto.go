package domain

import "github.com/shopspring/decimal"

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// PaginatedResponse wraps one page of a filtered list
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// ClientDTO is a client as shown in the client list, with derived columns
type ClientDTO struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             ClientType      `json:"type"`
	Status           ClientStatus    `json:"status"`
	PrimaryContact   Contact         `json:"primaryContact"`
	Contacts         []Contact       `json:"contacts"`
	Addresses        []Address       `json:"addresses"`
	Tags             []string        `json:"tags"`
	Notes            string          `json:"notes,omitempty"`
	ClientSince      string          `json:"clientSince"`
	LastService      string          `json:"lastService,omitempty"`
	NextService      string          `json:"nextService,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceStatus    BalanceStatus   `json:"balanceStatus"`
	AssignedStaffIDs []string        `json:"assignedStaffIds"`
}

// FuzzyClientSearchResponse is the best match for a loosely typed client name
type FuzzyClientSearchResponse struct {
	Found bool    `json:"found"`
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name,omitempty"`
	Score float64 `json:"score,omitempty"`
}

// CreateContactRequest is one contact of a new client
type CreateContactRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
	IsPrimary bool   `json:"isPrimary"`
}

// CreateAddressRequest is one service address of a new client
type CreateAddressRequest struct {
	Street  string `json:"street" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"max=50"`
	ZipCode string `json:"zipCode" validate:"required,max=20"`
}

// CreateClientRequest is the body of POST /clients
type CreateClientRequest struct {
	Name      string                 `json:"name" validate:"required,max=200"`
	Type      ClientType             `json:"type" validate:"required,oneof=residential commercial"`
	Status    ClientStatus           `json:"status" validate:"omitempty,oneof=active inactive lead"`
	Contacts  []CreateContactRequest `json:"contacts" validate:"required,min=1,dive"`
	Addresses []CreateAddressRequest `json:"addresses" validate:"dive"`
	Tags      []string               `json:"tags" validate:"dive,max=50"`
	Notes     string                 `json:"notes" validate:"max=2000"`
}

// CreateServiceRequest is the body of POST /services
type CreateServiceRequest struct {
	Name            string          `json:"name" validate:"required,max=200"`
	Description     string          `json:"description" validate:"max=2000"`
	Category        string          `json:"category" validate:"required,max=50"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	DurationMinutes int             `json:"durationMinutes" validate:"gt=0,lte=1440"`
}

// CreateViewRequest is the body of POST /views
type CreateViewRequest struct {
	Name    string     `json:"name" validate:"required,max=100"`
	Filters JobFilters `json:"filters"`
}

// FinanceSummaryDTO rolls up the finance module
type FinanceSummaryDTO struct {
	Billed      decimal.Decimal `json:"billed"`
	Collected   decimal.Decimal `json:"collected"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Overdue     decimal.Decimal `json:"overdue"`
	Expenses    decimal.Decimal `json:"expenses"`
	Payroll     decimal.Decimal `json:"payroll"`
	Net         decimal.Decimal `json:"net"`
}

// PayrollEntryDTO is a payroll entry with its computed gross pay
type PayrollEntryDTO struct {
	PayrollEntry
	StaffName string          `json:"staffName"`
	Gross     decimal.Decimal `json:"gross"`
}

// SessionDTO is the dashboard state owned by one session
type SessionDTO struct {
	ID          string      `json:"id"`
	JobFilters  JobFilters  `json:"jobFilters"`
	ClientQuery ClientQuery `json:"clientQuery"`
	Selection   []string    `json:"selection"`
	AllSelected bool        `json:"allSelected"`
	Columns     []string    `json:"columns"`
}

// SelectionDTO reports the selection against the session's visible clients
type SelectionDTO struct {
	Selected    []string `json:"selected"`
	VisibleIDs  []string `json:"visibleIds"`
	AllSelected bool     `json:"allSelected"`
}

// ToggleSelectionRequest is the body of POST /session/selection/toggle
type ToggleSelectionRequest struct {
	ID string `json:"id" validate:"required"`
}

// UpdateSessionFiltersRequest is the body of PUT /session/filters. Omitted
// parts are left unchanged.
type UpdateSessionFiltersRequest struct {
	JobFilters  *JobFilters  `json:"jobFilters"`
	ClientQuery *ClientQuery `json:"clientQuery"`
}

// ColumnsDTO is the session's column layout
type ColumnsDTO struct {
	Visible   []string `json:"visible"`
	Available []string `json:"available"`
}
