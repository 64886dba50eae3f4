package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/seed"
)

func TestDefault(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	assert.NotEmpty(t, ds.Clients)
	assert.NotEmpty(t, ds.Jobs)
	assert.NotEmpty(t, ds.Staff)
	assert.NotEmpty(t, ds.Services)
	assert.NotEmpty(t, ds.Invoices)
	assert.NotEmpty(t, ds.Expenses)
	assert.NotEmpty(t, ds.Payroll)

	for _, c := range ds.Clients {
		assert.NotEmpty(t, c.Contacts, "client %s", c.ID)
	}
	for _, j := range ds.Jobs {
		assert.NotNil(t, j.AssignedStaffIDs, "job %s", j.ID)
	}
}

func TestParse_CommentsAndTrailingCommas(t *testing.T) {
	doc := []byte(`{
		// one client
		"clients": [
			{"id": "a", "name": "A", "type": "residential",
			 "contacts": [{"name": "A", "email": "a@example.com"},],},
		],
		"jobs": [{"id": "j", "clientId": "a", "status": "scheduled", "date": "2025-01-01"}],
	}`)

	ds, err := seed.Parse(doc)
	require.NoError(t, err)
	require.Len(t, ds.Clients, 1)
	assert.Equal(t, domain.ClientStatusActive, ds.Clients[0].Status, "missing status defaults to active")
	assert.Equal(t, []string{}, ds.Jobs[0].AssignedStaffIDs)
	assert.Equal(t, domain.RecurringNone, ds.Jobs[0].Recurring)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", `{"clients": [`},
		{"client without contacts", `{"clients": [{"id": "a", "name": "A", "contacts": []}]}`},
		{"duplicate client", `{"clients": [
			{"id": "a", "contacts": [{"name": "x"}]},
			{"id": "a", "contacts": [{"name": "y"}]}]}`},
		{"bad job status", `{"jobs": [{"id": "j", "status": "pending"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := seed.Parse([]byte(`{"clients": [{"id": "a", "contacts": []}]}`))
	assert.ErrorIs(t, err, domain.ErrNoContacts)
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path uses embedded data", func(t *testing.T) {
		ds, err := seed.LoadFile("")
		require.NoError(t, err)
		assert.NotEmpty(t, ds.Clients)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.jsonc")
		require.NoError(t, os.WriteFile(path, []byte(`{"clients": [], /* none */}`), 0o600))

		ds, err := seed.LoadFile(path)
		require.NoError(t, err)
		assert.Empty(t, ds.Clients)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := seed.LoadFile(filepath.Join(t.TempDir(), "nope.jsonc"))
		assert.Error(t, err)
	})
}
