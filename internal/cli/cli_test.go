package cli_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyhome/dashboard-api/internal/cli"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/prefs"
	"github.com/tidyhome/dashboard-api/internal/seed"
	"go.uber.org/zap"
)

func newEnv(t *testing.T) *cli.Env {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return newEnvWith(t, ds)
}

func newEnvWith(t *testing.T, ds *seed.Dataset) *cli.Env {
	t.Helper()
	color.NoColor = true

	store := prefs.NewStore(filepath.Join(t.TempDir(), "prefs", "preferences.json"), "en")
	now := func() time.Time { return time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC) }
	return cli.NewEnv(ds, store, now, zap.NewNop())
}

func execute(t *testing.T, env *cli.Env, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(env)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// assertOrder checks that each needle appears in out after the previous one
func assertOrder(t *testing.T, out string, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		i := strings.Index(out, n)
		require.GreaterOrEqual(t, i, 0, "missing %q in:\n%s", n, out)
		assert.Greater(t, i, last, "%q out of order in:\n%s", n, out)
		last = i
	}
}

func TestClientsCmd(t *testing.T) {
	env := newEnv(t)

	t.Run("type and sort", func(t *testing.T) {
		out, err := execute(t, env, "clients", "--type", "residential", "--sort", "name_desc")
		require.NoError(t, err)
		assertOrder(t, out, "Maria Garcia", "John Smith", "Emily Chen", "3 client(s)")
		assert.NotContains(t, out, "ABC Corp")
	})

	t.Run("tag search", func(t *testing.T) {
		out, err := execute(t, env, "clients", "--search", "tag:vip")
		require.NoError(t, err)
		assert.Contains(t, out, "Maria Garcia")
		assert.Contains(t, out, "Greenway Offices")
		assert.NotContains(t, out, "John Smith")
	})

	t.Run("zip facet", func(t *testing.T) {
		out, err := execute(t, env, "clients", "--zip", "60609")
		require.NoError(t, err)
		assert.Contains(t, out, "ABC Corp")
		assert.Contains(t, out, "680.00 (overdue)")
		assert.Contains(t, out, "1 client(s)")
	})

	t.Run("no matches", func(t *testing.T) {
		out, err := execute(t, env, "clients", "--search", "zzzz-nobody")
		require.NoError(t, err)
		assert.Equal(t, "No matches\n", out)
	})

	t.Run("bad sort", func(t *testing.T) {
		_, err := execute(t, env, "clients", "--sort", "bogus")
		assert.Error(t, err)
	})
}

func TestClientsCmd_SearchHelp(t *testing.T) {
	out, err := execute(t, newEnv(t), "clients", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, `"tag:<name>" for tags containing <name>`)
}

func TestClientsCmd_ListsEveryPage(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)
	for i := 1; i <= 250; i++ {
		ds.Clients = append(ds.Clients, domain.Client{
			ID:       fmt.Sprintf("bulk-%03d", i),
			Name:     fmt.Sprintf("Bulk Office %03d", i),
			Type:     domain.ClientTypeCommercial,
			Status:   domain.ClientStatusActive,
			Contacts: []domain.Contact{{Name: "Front Desk"}},
		})
	}
	env := newEnvWith(t, ds)

	out, err := execute(t, env, "clients", "--type", "commercial", "--sort", "name_asc")
	require.NoError(t, err)
	assertOrder(t, out, "Bulk Office 001", "Bulk Office 200", "Bulk Office 201", "Bulk Office 250", "253 client(s)")
}

func TestJobsCmd(t *testing.T) {
	env := newEnv(t)

	t.Run("status and date range", func(t *testing.T) {
		out, err := execute(t, env, "jobs", "--status", "scheduled", "--from", "2025-05-07", "--to", "2025-05-12", "--sort", "date_asc")
		require.NoError(t, err)
		assertOrder(t, out, "105 ", "107 ", "104 ", "3 job(s)")
	})

	t.Run("unassigned", func(t *testing.T) {
		out, err := execute(t, env, "jobs", "--unassigned", "--sort", "date_desc")
		require.NoError(t, err)
		assertOrder(t, out, "109 ", "104 ", "2 job(s)")
		assert.Contains(t, out, "unassigned")
	})

	t.Run("follow up with notes", func(t *testing.T) {
		out, err := execute(t, env, "jobs", "--follow-up", "--notes")
		require.NoError(t, err)
		assert.Contains(t, out, "106 ")
		assert.Contains(t, out, "109 ")
		assert.NotContains(t, out, "104 ")
	})

	t.Run("bad sort", func(t *testing.T) {
		_, err := execute(t, env, "jobs", "--sort", "price")
		assert.Error(t, err)
	})
}

func TestLocaleCmd(t *testing.T) {
	env := newEnv(t)

	out, err := execute(t, env, "locale", "get")
	require.NoError(t, err)
	assert.Equal(t, "en\n", out)

	_, err = execute(t, env, "locale", "set", "fr")
	assert.ErrorIs(t, err, prefs.ErrUnsupportedLocale)

	out, err = execute(t, env, "locale", "set", " ES ")
	require.NoError(t, err)
	assert.Contains(t, out, "Locale set to es")

	out, err = execute(t, env, "locale", "get")
	require.NoError(t, err)
	assert.Equal(t, "es\n", out)

	out, err = execute(t, env, "clients", "--type", "commercial")
	require.NoError(t, err)
	assert.Contains(t, out, "NOMBRE")
	assert.Contains(t, out, "3 cliente(s)")
}
