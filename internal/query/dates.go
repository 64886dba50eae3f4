package query

import (
	"strings"
	"time"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDay parses a date or date-time string and returns midnight UTC of its
// calendar day. The time of day and any offset are dropped so a job dated
// "2025-05-04T18:30:00+02:00" lands on May 4th.
func ParseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// dayBounds resolves a DateRange into inclusive day bounds. A missing or
// malformed bound is reported as not set.
type dayBounds struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

func resolveRange(r domain.DateRange) dayBounds {
	var b dayBounds
	b.start, b.hasStart = ParseDay(r.Start)
	b.end, b.hasEnd = ParseDay(r.End)
	return b
}

func (b dayBounds) active() bool {
	return b.hasStart || b.hasEnd
}

// contains compares at day granularity, which is the same as testing the
// instant against [start 00:00:00, end 23:59:59].
func (b dayBounds) contains(day time.Time) bool {
	if b.hasStart && day.Before(b.start) {
		return false
	}
	if b.hasEnd && day.After(b.end) {
		return false
	}
	return true
}

// InRange reports whether the date string falls within the range. An empty
// or fully malformed range matches everything; an unparsable date never
// matches an active range.
func InRange(date string, r domain.DateRange) bool {
	bounds := resolveRange(r)
	if !bounds.active() {
		return true
	}
	day, ok := ParseDay(date)
	if !ok {
		return false
	}
	return bounds.contains(day)
}
