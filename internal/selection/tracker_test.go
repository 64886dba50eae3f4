package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidyhome/dashboard-api/internal/selection"
)

func TestTracker_Toggle(t *testing.T) {
	var tr selection.Tracker

	assert.True(t, tr.Toggle("1"))
	assert.True(t, tr.IsSelected("1"))
	assert.Equal(t, 1, tr.Len())

	assert.False(t, tr.Toggle("1"))
	assert.False(t, tr.IsSelected("1"))
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_ToggleSelectAll(t *testing.T) {
	visible := []string{"1", "2", "3"}

	t.Run("selects the visible set", func(t *testing.T) {
		tr := selection.New("2")
		tr.ToggleSelectAll(visible)
		assert.Equal(t, []string{"1", "2", "3"}, tr.IDs())
		assert.True(t, tr.AllSelected(visible))
	})

	t.Run("clears when everything visible is selected", func(t *testing.T) {
		tr := selection.New("1", "2", "3")
		tr.ToggleSelectAll(visible)
		assert.Empty(t, tr.IDs())
	})

	t.Run("replace drops hidden selections", func(t *testing.T) {
		tr := selection.New("1", "9")
		tr.ToggleSelectAll(visible)
		assert.Equal(t, []string{"1", "2", "3"}, tr.IDs())
		assert.False(t, tr.IsSelected("9"))
	})

	t.Run("stale ids prevent all selected", func(t *testing.T) {
		tr := selection.New("1", "2", "3", "9")
		assert.False(t, tr.AllSelected(visible))
		tr.ToggleSelectAll(visible)
		assert.Equal(t, []string{"1", "2", "3"}, tr.IDs())
	})

	t.Run("twice in a row restores an all-selected state", func(t *testing.T) {
		tr := selection.New("1", "2", "3")
		tr.ToggleSelectAll(visible)
		tr.ToggleSelectAll(visible)
		assert.Equal(t, []string{"1", "2", "3"}, tr.IDs())
	})

	t.Run("twice in a row restores an empty state", func(t *testing.T) {
		tr := selection.New()
		tr.ToggleSelectAll(visible)
		tr.ToggleSelectAll(visible)
		assert.Empty(t, tr.IDs())
	})

	t.Run("empty visible list", func(t *testing.T) {
		tr := selection.New()
		tr.ToggleSelectAll(nil)
		assert.Equal(t, 0, tr.Len())
		assert.False(t, tr.AllSelected(nil))
	})
}

func TestTracker_AllSelected(t *testing.T) {
	tr := selection.New("1", "2")

	assert.True(t, tr.AllSelected([]string{"1", "2"}))
	assert.True(t, tr.AllSelected([]string{"2", "1", "2"}), "duplicates in the visible list are harmless")
	assert.False(t, tr.AllSelected([]string{"1", "2", "3"}))
	assert.False(t, tr.AllSelected([]string{"1"}), "selection larger than the visible list")
	assert.False(t, tr.AllSelected([]string{}))
}

func TestTracker_Clear(t *testing.T) {
	tr := selection.New("1", "2")
	tr.Clear()
	assert.Equal(t, 0, tr.Len())

	// Still usable after clearing.
	tr.Toggle("3")
	assert.Equal(t, []string{"3"}, tr.IDs())
}

func TestTracker_Prune(t *testing.T) {
	tr := selection.New("1", "2", "7", "9")

	dropped := tr.Prune([]string{"1", "2", "3"})

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []string{"1", "2"}, tr.IDs())
	assert.False(t, tr.AllSelected([]string{"1", "2", "3"}))
	assert.True(t, tr.AllSelected([]string{"1", "2"}))
}
