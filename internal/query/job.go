package query

import (
	"strings"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// jobPredicate is a compiled form of JobFilters. Compiling once per filter
// pass keeps date parsing, set building and lowercasing out of the loop.
type jobPredicate struct {
	status        string
	dates         dayBounds
	staff         map[string]struct{}
	services      map[string]struct{}
	clientName    string
	zipCode       string
	hasNotes      bool
	needsFollowUp bool
	unassigned    bool
}

func compileJobFilters(f domain.JobFilters) jobPredicate {
	status := f.Status
	if status == domain.FilterAll {
		status = ""
	}
	return jobPredicate{
		status:        status,
		dates:         resolveRange(f.DateRange),
		staff:         toSet(f.StaffIDs),
		services:      toSet(f.ServiceIDs),
		clientName:    strings.ToLower(f.ClientName),
		zipCode:       f.ZipCode,
		hasNotes:      f.HasNotes,
		needsFollowUp: f.NeedsFollowUp,
		unassigned:    f.Unassigned,
	}
}

// match checks the flags and exact comparisons before the date parse and the
// substring scans. The order does not change the result.
func (p *jobPredicate) match(j *domain.Job) bool {
	if p.status != "" && string(j.Status) != p.status {
		return false
	}
	if p.unassigned && !j.IsUnassigned() {
		return false
	}
	if p.needsFollowUp && !j.NeedsFollowUp {
		return false
	}
	if p.hasNotes && j.Notes == "" {
		return false
	}
	if len(p.services) > 0 {
		if _, ok := p.services[j.ServiceID]; !ok {
			return false
		}
	}
	if len(p.staff) > 0 && !anyIn(j.AssignedStaffIDs, p.staff) {
		return false
	}
	if p.dates.active() {
		day, ok := ParseDay(j.Date)
		if !ok || !p.dates.contains(day) {
			return false
		}
	}
	if p.clientName != "" && !containsFold(j.ClientName, p.clientName) {
		return false
	}
	if p.zipCode != "" && !strings.Contains(j.Address.ZipCode, p.zipCode) {
		return false
	}
	return true
}

// MatchesJob reports whether the job passes every facet of the filters.
//
// The unassigned flag and the staff facet are evaluated independently, so
// setting both with a non-empty staff list matches no job.
func MatchesJob(j *domain.Job, f domain.JobFilters) bool {
	p := compileJobFilters(f)
	return p.match(j)
}

// FilterJobs returns the jobs passing every facet of the filters, in their
// original order.
func FilterJobs(jobs []domain.Job, f domain.JobFilters) []domain.Job {
	p := compileJobFilters(f)
	return collect(jobs, p.match)
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func anyIn(values []string, set map[string]struct{}) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
