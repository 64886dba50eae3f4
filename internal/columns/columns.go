// Package columns manages the ordered set of optional columns shown in the
// client list. The name column is always shown and is not managed here.
package columns

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned for a column ID outside the toggleable set
var ErrUnknownColumn = errors.New("unknown column")

// Column identifies a client list column
type Column string

const (
	Name          Column = "name"
	Contact       Column = "contact"
	Address       Column = "address"
	Type          Column = "type"
	Status        Column = "status"
	LastService   Column = "lastService"
	NextService   Column = "nextService"
	Balance       Column = "balance"
	ClientSince   Column = "clientSince"
	AssignedStaff Column = "assignedStaff"
)

// Toggleable lists every column a user can show or hide, in catalog order
var Toggleable = []Column{
	Contact, Address, Type, Status, LastService, NextService, Balance, ClientSince, AssignedStaff,
}

// Default is the column order a new session starts with
var Default = []Column{
	Contact, Address, Type, Status, LastService, NextService, Balance,
}

// Parse validates a column ID
func Parse(s string) (Column, error) {
	for _, c := range Toggleable {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Config is the ordered list of visible toggleable columns.
// It never holds duplicates and never drops below one column.
type Config struct {
	visible []Column
}

// NewConfig returns a config holding the default columns
func NewConfig() *Config {
	c := &Config{}
	c.ResetToDefault()
	return c
}

// Columns returns a copy of the visible columns in display order
func (c *Config) Columns() []Column {
	out := make([]Column, len(c.visible))
	copy(out, c.visible)
	return out
}

// IsVisible reports whether the column is shown. Name is always shown.
func (c *Config) IsVisible(col Column) bool {
	return col == Name || c.indexOf(col) >= 0
}

// Toggle hides a visible column unless it is the last one, and appends a
// hidden column at the end. It returns whether the column is visible after.
func (c *Config) Toggle(col Column) (bool, error) {
	if _, err := Parse(string(col)); err != nil {
		return false, err
	}
	i := c.indexOf(col)
	if i < 0 {
		c.visible = append(c.visible, col)
		return true, nil
	}
	if len(c.visible) <= 1 {
		return true, nil
	}
	c.visible = append(c.visible[:i], c.visible[i+1:]...)
	return false, nil
}

// MoveUp swaps the column with its left neighbour. Moving the first column,
// or one that is not visible, does nothing.
func (c *Config) MoveUp(col Column) error {
	if _, err := Parse(string(col)); err != nil {
		return err
	}
	if i := c.indexOf(col); i > 0 {
		c.visible[i-1], c.visible[i] = c.visible[i], c.visible[i-1]
	}
	return nil
}

// MoveDown swaps the column with its right neighbour. Moving the last
// column, or one that is not visible, does nothing.
func (c *Config) MoveDown(col Column) error {
	if _, err := Parse(string(col)); err != nil {
		return err
	}
	if i := c.indexOf(col); i >= 0 && i < len(c.visible)-1 {
		c.visible[i], c.visible[i+1] = c.visible[i+1], c.visible[i]
	}
	return nil
}

// ResetToDefault restores the default columns
func (c *Config) ResetToDefault() {
	c.visible = make([]Column, len(Default))
	copy(c.visible, Default)
}

func (c *Config) indexOf(col Column) int {
	for i, v := range c.visible {
		if v == col {
			return i
		}
	}
	return -1
}
