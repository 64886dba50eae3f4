package repository_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"github.com/tidyhome/dashboard-api/internal/seed"
)

func newTestStore(t *testing.T) *repository.Store {
	ds, err := seed.Default()
	require.NoError(t, err)
	store := repository.NewStore(ds)
	store.SetClock(func() time.Time { return time.Date(2025, 5, 6, 12, 0, 0, 0, time.UTC) })
	return store
}

func TestClientRepository(t *testing.T) {
	store := newTestStore(t)
	repo := repository.NewClientRepository(store)

	t.Run("get by id", func(t *testing.T) {
		c, err := repo.GetByID("2")
		require.NoError(t, err)
		assert.Equal(t, "ABC Corp", c.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID("missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		list := repo.List()
		list[0].Name = "changed"
		c, err := repo.GetByID(list[0].ID)
		require.NoError(t, err)
		assert.NotEqual(t, "changed", c.Name)
	})

	t.Run("create assigns time derived ids", func(t *testing.T) {
		before := repo.Count()
		a := &domain.Client{Name: "New A", Contacts: []domain.Contact{{Name: "A"}}}
		b := &domain.Client{Name: "New B", Contacts: []domain.Contact{{Name: "B"}}}
		repo.Create(a)
		repo.Create(b)

		assert.Equal(t, before+2, repo.Count())
		assert.NotEqual(t, a.ID, b.ID, "same millisecond still yields distinct ids")
		assert.Equal(t, "1746532800000", a.ID)
		assert.Equal(t, "1746532800001", b.ID)
		assert.Equal(t, store.Now(), a.CreatedAt)
	})
}

func TestJobRepository_ListByClient(t *testing.T) {
	repo := repository.NewJobRepository(newTestStore(t))

	jobs := repo.ListByClient("1")
	require.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.Equal(t, "1", j.ClientID)
	}
	assert.Empty(t, repo.ListByClient("missing"))
}

func TestViewRepository(t *testing.T) {
	repo := repository.NewViewRepository(newTestStore(t))

	filters := domain.JobFilters{Status: "scheduled", StaffIDs: []string{"2"}}
	v := repo.Create("  My Team's Week ", filters)

	assert.Equal(t, "my-team-s-week", v.ID)
	assert.Equal(t, "My Team's Week", v.Name)

	t.Run("snapshot is frozen", func(t *testing.T) {
		filters.StaffIDs[0] = "99"
		got, err := repo.GetByID(v.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, got.Filters.StaffIDs)

		got.Filters.StaffIDs[0] = "42"
		again, err := repo.GetByID(v.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, again.Filters.StaffIDs)
	})

	t.Run("duplicate names get a suffix", func(t *testing.T) {
		second := repo.Create("My team's week", domain.JobFilters{})
		third := repo.Create("my TEAM s week", domain.JobFilters{})
		assert.Equal(t, "my-team-s-week-2", second.ID)
		assert.Equal(t, "my-team-s-week-3", third.ID)
		assert.Len(t, repo.List(), 3)
	})

	t.Run("lookup ignores case", func(t *testing.T) {
		_, err := repo.GetByID("MY-TEAM-S-WEEK")
		assert.NoError(t, err)
	})
}

func TestSlugifyViewID(t *testing.T) {
	assert.Equal(t, "view", repository.SlugifyViewID("  !!! "))
	assert.Equal(t, "unassigned-follow-ups", repository.SlugifyViewID("Unassigned -- follow-ups"))
	assert.Len(t, repository.SlugifyViewID(strings.Repeat("a", 100)), 63)
}
