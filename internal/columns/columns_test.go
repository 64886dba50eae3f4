package columns_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyhome/dashboard-api/internal/columns"
)

func TestNewConfig_Default(t *testing.T) {
	c := columns.NewConfig()
	assert.Equal(t, columns.Default, c.Columns())
	assert.True(t, c.IsVisible(columns.Name))
	assert.False(t, c.IsVisible(columns.ClientSince))
}

func TestConfig_Toggle(t *testing.T) {
	c := columns.NewConfig()

	visible, err := c.Toggle(columns.ClientSince)
	require.NoError(t, err)
	assert.True(t, visible)
	cols := c.Columns()
	assert.Equal(t, columns.ClientSince, cols[len(cols)-1], "shown columns are appended")

	visible, err = c.Toggle(columns.Address)
	require.NoError(t, err)
	assert.False(t, visible)
	assert.False(t, c.IsVisible(columns.Address))
}

func TestConfig_ToggleKeepsOneColumn(t *testing.T) {
	c := columns.NewConfig()
	for _, col := range columns.Default[1:] {
		_, err := c.Toggle(col)
		require.NoError(t, err)
	}
	require.Equal(t, []columns.Column{columns.Contact}, c.Columns())

	visible, err := c.Toggle(columns.Contact)
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, []columns.Column{columns.Contact}, c.Columns())
}

func TestConfig_ToggleUnknown(t *testing.T) {
	c := columns.NewConfig()

	_, err := c.Toggle("revenue")
	assert.ErrorIs(t, err, columns.ErrUnknownColumn)

	_, err = c.Toggle(columns.Name)
	assert.ErrorIs(t, err, columns.ErrUnknownColumn, "name is not toggleable")

	assert.Equal(t, columns.Default, c.Columns())
}

func TestConfig_NoDuplicates(t *testing.T) {
	c := columns.NewConfig()
	for i := 0; i < 5; i++ {
		_, err := c.Toggle(columns.AssignedStaff)
		require.NoError(t, err)
	}

	seen := map[columns.Column]bool{}
	for _, col := range c.Columns() {
		assert.False(t, seen[col], "duplicate column %s", col)
		seen[col] = true
	}
}

func TestConfig_Move(t *testing.T) {
	c := columns.NewConfig()

	require.NoError(t, c.MoveUp(columns.Address))
	assert.Equal(t, []columns.Column{columns.Address, columns.Contact}, c.Columns()[:2])

	t.Run("up at the top is a no-op", func(t *testing.T) {
		require.NoError(t, c.MoveUp(columns.Address))
		assert.Equal(t, columns.Address, c.Columns()[0])
	})

	t.Run("down at the bottom is a no-op", func(t *testing.T) {
		before := c.Columns()
		require.NoError(t, c.MoveDown(columns.Balance))
		assert.Equal(t, before, c.Columns())
	})

	t.Run("down swaps with the next column", func(t *testing.T) {
		require.NoError(t, c.MoveDown(columns.Address))
		assert.Equal(t, []columns.Column{columns.Contact, columns.Address}, c.Columns()[:2])
	})

	t.Run("hidden column is a no-op", func(t *testing.T) {
		before := c.Columns()
		require.NoError(t, c.MoveUp(columns.ClientSince))
		assert.Equal(t, before, c.Columns())
	})

	t.Run("unknown column", func(t *testing.T) {
		assert.ErrorIs(t, c.MoveDown("bogus"), columns.ErrUnknownColumn)
	})
}

func TestConfig_ResetToDefault(t *testing.T) {
	c := columns.NewConfig()
	_, _ = c.Toggle(columns.Contact)
	_, _ = c.Toggle(columns.AssignedStaff)
	_ = c.MoveUp(columns.Balance)

	c.ResetToDefault()

	assert.Equal(t, columns.Default, c.Columns())
}

func TestConfig_ColumnsReturnsCopy(t *testing.T) {
	c := columns.NewConfig()
	cols := c.Columns()
	cols[0] = columns.Balance

	assert.Equal(t, columns.Contact, c.Columns()[0])
}

func TestConfig_MoveSequence(t *testing.T) {
	c := columns.NewConfig()
	require.NoError(t, c.MoveDown(columns.Contact))
	require.NoError(t, c.MoveDown(columns.Contact))
	require.NoError(t, c.MoveUp(columns.Balance))
	require.NoError(t, c.MoveUp(columns.ClientSince))

	want := []columns.Column{
		columns.Address, columns.Type, columns.Contact, columns.Status,
		columns.LastService, columns.Balance, columns.NextService,
	}
	if diff := cmp.Diff(want, c.Columns()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
}
