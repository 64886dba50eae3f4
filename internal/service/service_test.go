package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"github.com/tidyhome/dashboard-api/internal/seed"
	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store    *repository.Store
	clients  *service.ClientService
	jobs     *service.JobService
	staff    *service.StaffService
	catalog  *service.CatalogService
	finance  *service.FinanceService
	views    *service.ViewService
	clientDB *repository.ClientRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	store := repository.NewStore(ds)
	store.SetClock(func() time.Time { return testNow })

	log := zap.NewNop()
	clientRepo := repository.NewClientRepository(store)
	jobRepo := repository.NewJobRepository(store)
	staffRepo := repository.NewStaffRepository(store)
	financeRepo := repository.NewFinanceRepository(store)

	return &fixture{
		store:    store,
		clients:  service.NewClientService(clientRepo, jobRepo, financeRepo, store.Now, log),
		jobs:     service.NewJobService(jobRepo, log),
		staff:    service.NewStaffService(staffRepo, log),
		catalog:  service.NewCatalogService(repository.NewServiceRepository(store), log),
		finance:  service.NewFinanceService(financeRepo, staffRepo, store.Now, log),
		views:    service.NewViewService(repository.NewViewRepository(store), log),
		clientDB: clientRepo,
	}
}

func dtoIDs(t *testing.T, resp *domain.PaginatedResponse) []string {
	t.Helper()
	dtos, ok := resp.Data.([]domain.ClientDTO)
	require.True(t, ok)
	ids := make([]string, len(dtos))
	for i, d := range dtos {
		ids[i] = d.ID
	}
	return ids
}

func jobIDs(jobs []domain.Job) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestClientService_List(t *testing.T) {
	f := newFixture(t)

	t.Run("defaults", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, dtoIDs(t, resp))
		assert.Equal(t, int64(6), resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("type and sort", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{
			Query:  domain.ClientQuery{Type: "commercial"},
			SortBy: query.ClientSortNameAsc,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "6", "4"}, dtoIDs(t, resp))
	})

	t.Run("second page", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "4"}, dtoIDs(t, resp))
		assert.Equal(t, 3, resp.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{Page: 9, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, dtoIDs(t, resp))
		assert.Equal(t, int64(6), resp.Total)
	})

	t.Run("page size is capped", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{PageSize: 5000})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.PageSize)
	})

	t.Run("overdue balance", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{
			Query: domain.ClientQuery{Advanced: domain.ClientAdvancedFilters{BalanceStatus: domain.BalanceStatusOverdue}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, dtoIDs(t, resp))
	})

	t.Run("tag search", func(t *testing.T) {
		resp, err := f.clients.List(service.ClientListParams{Query: domain.ClientQuery{Search: "tag:VIP"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "6"}, dtoIDs(t, resp))
	})

	t.Run("unknown sort", func(t *testing.T) {
		_, err := f.clients.List(service.ClientListParams{SortBy: "balance_desc"})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestClientService_GetByID(t *testing.T) {
	f := newFixture(t)

	dto, err := f.clients.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", dto.PrimaryContact.Name)
	assert.Equal(t, "2025-05-12", dto.NextService)
	assertDecimal(t, "680", dto.Balance)
	assert.Equal(t, domain.BalanceStatusOverdue, dto.BalanceStatus)
	assert.Equal(t, []string{"2", "5"}, dto.AssignedStaffIDs)

	t.Run("first contact stands in for a missing primary", func(t *testing.T) {
		dto, err := f.clients.GetByID("3")
		require.NoError(t, err)
		assert.Equal(t, "Maria Garcia", dto.PrimaryContact.Name)
		assert.Equal(t, domain.BalanceStatusOutstanding, dto.BalanceStatus)
	})

	t.Run("client without staff", func(t *testing.T) {
		dto, err := f.clients.GetByID("6")
		require.NoError(t, err)
		assert.NotNil(t, dto.AssignedStaffIDs)
		assert.Empty(t, dto.AssignedStaffIDs)
		assert.Equal(t, domain.BalanceStatusPaid, dto.BalanceStatus)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.clients.GetByID("nope")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestClientService_VisibleIDs(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []string{"1", "3", "5"}, f.clients.VisibleIDs(domain.ClientQuery{Type: "residential"}))
	assert.Empty(t, f.clients.VisibleIDs(domain.ClientQuery{Search: "no such client"}))
}

func TestClientService_Search(t *testing.T) {
	f := newFixture(t)

	got := f.clients.Search("abc corp")
	assert.True(t, got.Found)
	assert.Equal(t, "2", got.ID)

	got = f.clients.Search("zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.False(t, got.Found)
}

func TestClientService_Create(t *testing.T) {
	f := newFixture(t)

	dto, err := f.clients.Create(&domain.CreateClientRequest{
		Name: "Oak Street Bakery",
		Type: domain.ClientTypeCommercial,
		Contacts: []domain.CreateContactRequest{
			{Name: "Rosa Diaz", Email: "rosa@oakbakery.example"},
		},
		Addresses: []domain.CreateAddressRequest{
			{Street: "9 Oak St", City: "Springfield", ZipCode: "62702"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "1746532800000", dto.ID)
	assert.Equal(t, domain.ClientStatusActive, dto.Status)
	assert.Equal(t, "Rosa Diaz", dto.PrimaryContact.Name)
	assert.Equal(t, "2025-05-06T12:00:00Z", dto.ClientSince)
	assert.Equal(t, domain.BalanceStatusPaid, dto.BalanceStatus)
	assert.Equal(t, 7, f.clientDB.Count())

	t.Run("no contacts", func(t *testing.T) {
		_, err := f.clients.Create(&domain.CreateClientRequest{Name: "Nobody", Type: domain.ClientTypeResidential})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.Equal(t, 7, f.clientDB.Count())
	})
}

func TestJobService_List(t *testing.T) {
	f := newFixture(t)

	jobs, err := f.jobs.List(service.JobListParams{
		Filters: domain.JobFilters{Status: "scheduled"},
		SortBy:  query.JobSortDateAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"102", "105", "107", "104", "109"}, jobIDs(jobs))

	jobs, err = f.jobs.List(service.JobListParams{
		Filters: domain.JobFilters{Unassigned: true},
		SortBy:  query.JobSortDateDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"109", "104"}, jobIDs(jobs))

	_, err = f.jobs.List(service.JobListParams{SortBy: "price"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = f.jobs.GetByID("999")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestStaffService_List(t *testing.T) {
	f := newFixture(t)

	ids := func(staff []domain.StaffMember) []string {
		out := make([]string, len(staff))
		for i, s := range staff {
			out[i] = s.ID
		}
		return out
	}

	staff, err := f.staff.List(domain.StaffFilters{Day: "saturday"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, ids(staff))

	staff, err = f.staff.List(domain.StaffFilters{Day: "tuesday", From: "08:00", To: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, ids(staff))

	// One-digit hours are read as clock times, not compared as text
	staff, err = f.staff.List(domain.StaffFilters{Day: "monday", From: "9:00", To: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(staff))

	staff, err = f.staff.List(domain.StaffFilters{Day: "monday", From: "9:00", To: "9:30"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(staff))

	staff, err = f.staff.List(domain.StaffFilters{Role: "cleaner", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "5"}, ids(staff))

	invalid := []domain.StaffFilters{
		{Day: "funday"},
		{From: "08:00"},
		{Day: "monday", From: "8am"},
		{Day: "monday", From: "15:00", To: "09:00"},
		{Day: "monday", From: "10:00", To: "9:30"},
	}
	for _, filters := range invalid {
		_, err := f.staff.List(filters)
		assert.ErrorIs(t, err, service.ErrInvalidInput, "%+v", filters)
	}
}

func TestCatalogService(t *testing.T) {
	f := newFixture(t)

	assert.Len(t, f.catalog.List(false), 5)
	assert.Len(t, f.catalog.List(true), 4)

	svc, err := f.catalog.Create(&domain.CreateServiceRequest{
		Name:            "Fridge Clean",
		Category:        "add-on",
		BasePrice:       decimal.RequireFromString("35.00"),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "1746532800000", svc.ID)
	assert.True(t, svc.Active)
	assert.Len(t, f.catalog.List(true), 5)

	_, err = f.catalog.Create(&domain.CreateServiceRequest{
		Name: "Refund", Category: "add-on", BasePrice: decimal.RequireFromString("-1"), DurationMinutes: 10,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestFinanceService(t *testing.T) {
	f := newFixture(t)

	t.Run("invoices", func(t *testing.T) {
		sent := f.finance.Invoices("sent", "")
		require.Len(t, sent, 2)
		assert.Equal(t, "inv-3", sent[0].ID)
		assert.Equal(t, "inv-4", sent[1].ID)

		byClient := f.finance.Invoices(domain.FilterAll, "2")
		require.Len(t, byClient, 1)
		assert.Equal(t, "inv-2", byClient[0].ID)
	})

	t.Run("expenses", func(t *testing.T) {
		supplies := f.finance.Expenses("Supplies")
		require.Len(t, supplies, 1)
		assert.Equal(t, "exp-1", supplies[0].ID)
		assert.Len(t, f.finance.Expenses(""), 4)
	})

	t.Run("payroll", func(t *testing.T) {
		entries := f.finance.Payroll("5")
		require.Len(t, entries, 1)
		assert.Equal(t, "Ana Silva", entries[0].StaffName)
		assertDecimal(t, "1551", entries[0].Gross)
	})

	t.Run("summary", func(t *testing.T) {
		sum := f.finance.Summary()
		assertDecimal(t, "2200", sum.Billed)
		assertDecimal(t, "920", sum.Collected)
		assertDecimal(t, "1280", sum.Outstanding)
		assertDecimal(t, "680", sum.Overdue)
		assertDecimal(t, "846.95", sum.Expenses)
		assertDecimal(t, "7363", sum.Payroll)
		assertDecimal(t, "-7289.95", sum.Net)
	})
}

func TestViewService(t *testing.T) {
	f := newFixture(t)

	view := f.views.Create(&domain.CreateViewRequest{
		Name:    "Follow-ups",
		Filters: domain.JobFilters{NeedsFollowUp: true},
	})
	assert.Equal(t, "follow-ups", view.ID)

	got, err := f.views.GetByID("follow-ups")
	require.NoError(t, err)
	assert.True(t, got.Filters.NeedsFollowUp)
	assert.Len(t, f.views.List(), 1)

	_, err = f.views.GetByID("missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
