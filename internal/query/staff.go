package query

import (
	"strings"
	"time"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// Weekdays are the availability keys, in calendar order
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// IsWeekday reports whether day is one of Weekdays, ignoring case
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}

// NormalizeClock parses a "15:04" time, accepting a one-digit hour, and
// returns it zero-padded so clock values compare as strings
func NormalizeClock(t string) (string, bool) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(t))
	if err != nil {
		return "", false
	}
	return parsed.Format("15:04"), true
}

// AvailableOn reports whether the staff member works on day and their window
// covers from..to. Empty from or to only require a window on that day. A
// bound that is not a clock time never fits a window.
func AvailableOn(s *domain.StaffMember, day, from, to string) bool {
	w, ok := s.Availability[strings.ToLower(day)]
	if !ok || w.Start == "" || w.End == "" {
		return false
	}
	var valid bool
	if from != "" {
		if from, valid = NormalizeClock(from); !valid {
			return false
		}
	}
	if to != "" {
		if to, valid = NormalizeClock(to); !valid {
			return false
		}
	}
	if from != "" && from < w.Start {
		return false
	}
	if to != "" && to > w.End {
		return false
	}
	return true
}

// MatchesStaff reports whether the staff member passes every set filter
func MatchesStaff(s *domain.StaffMember, f domain.StaffFilters) bool {
	if f.Role != "" && f.Role != domain.FilterAll && string(s.Role) != f.Role {
		return false
	}
	if f.Status != "" && f.Status != domain.FilterAll && string(s.Status) != f.Status {
		return false
	}
	if f.Skill != "" && !s.HasSkill(f.Skill) {
		return false
	}
	if f.Day != "" && !AvailableOn(s, f.Day, f.From, f.To) {
		return false
	}
	return true
}

// FilterStaff keeps the staff members matching f, in input order
func FilterStaff(staff []domain.StaffMember, f domain.StaffFilters) []domain.StaffMember {
	return collect(staff, func(s *domain.StaffMember) bool { return MatchesStaff(s, f) })
}
