// Package prefs persists the operator's display preferences to a small JSON file.
package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/natefinch/atomic"
)

const filePerms = 0o644

// ErrUnsupportedLocale is returned when setting a locale the dashboard has no translations for
var ErrUnsupportedLocale = errors.New("unsupported locale")

// SupportedLocales are the languages the dashboard ships
var SupportedLocales = []string{"en", "es"}

// DefaultLocale is used when nothing has been saved yet
const DefaultLocale = "en"

// Preferences is the persisted document
type Preferences struct {
	Locale string `json:"locale"`
}

// Store reads and writes Preferences at a fixed path. Writes replace the
// file atomically so a crash never leaves half a document behind.
type Store struct {
	mu       sync.Mutex
	path     string
	fallback string
}

// NewStore returns a store for path. fallback is the locale reported when the
// file does not exist yet.
func NewStore(path, fallback string) *Store {
	if !IsSupported(fallback) {
		fallback = DefaultLocale
	}
	return &Store{path: path, fallback: fallback}
}

// IsSupported reports whether locale is one of SupportedLocales
func IsSupported(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// Load reads the preferences. A missing file yields the fallback locale.
func (s *Store) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Preferences{Locale: s.fallback}, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences %s: %w", s.path, err)
	}
	if !IsSupported(p.Locale) {
		p.Locale = s.fallback
	}
	return p, nil
}

// SetLocale validates and saves the locale
func (s *Store) SetLocale(locale string) (Preferences, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if !IsSupported(locale) {
		return Preferences{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedLocale, locale, strings.Join(SupportedLocales, ", "))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return Preferences{}, err
	}
	p.Locale = locale

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to encode preferences: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Preferences{}, fmt.Errorf("failed to create preferences dir: %w", err)
		}
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return Preferences{}, fmt.Errorf("failed to write preferences: %w", err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(s.path, filePerms); err != nil {
		return Preferences{}, fmt.Errorf("failed to set preferences permissions: %w", err)
	}
	return p, nil
}
