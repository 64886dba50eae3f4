package query

import (
	"sort"
	"strings"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// ClientSortOption names an ordering of the client list
type ClientSortOption string

const (
	ClientSortNameAsc     ClientSortOption = "name_asc"
	ClientSortNameDesc    ClientSortOption = "name_desc"
	ClientSortCreatedDesc ClientSortOption = "created_desc"
	ClientSortCreatedAsc  ClientSortOption = "created_asc"
	ClientSortCityAsc     ClientSortOption = "city_asc"
	ClientSortCityDesc    ClientSortOption = "city_desc"
)

// JobSortOption names an ordering of the job list
type JobSortOption string

const (
	JobSortDateAsc   JobSortOption = "date_asc"
	JobSortDateDesc  JobSortOption = "date_desc"
	JobSortClientAsc JobSortOption = "client_asc"
)

// SortClients sorts in place with a stable sort. Unknown options leave the
// order untouched.
func SortClients(clients []domain.Client, by ClientSortOption) {
	var less func(a, b *domain.Client) bool
	switch by {
	case ClientSortNameAsc:
		less = func(a, b *domain.Client) bool { return lowerLess(a.Name, b.Name) }
	case ClientSortNameDesc:
		less = func(a, b *domain.Client) bool { return lowerLess(b.Name, a.Name) }
	case ClientSortCreatedDesc:
		less = func(a, b *domain.Client) bool { return a.CreatedAt.After(b.CreatedAt) }
	case ClientSortCreatedAsc:
		less = func(a, b *domain.Client) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case ClientSortCityAsc:
		less = func(a, b *domain.Client) bool { return lowerLess(a.PrimaryAddress().City, b.PrimaryAddress().City) }
	case ClientSortCityDesc:
		less = func(a, b *domain.Client) bool { return lowerLess(b.PrimaryAddress().City, a.PrimaryAddress().City) }
	default:
		return
	}
	sort.SliceStable(clients, func(i, j int) bool { return less(&clients[i], &clients[j]) })
}

// SortJobs sorts in place with a stable sort. Date ordering breaks ties on
// start time. Unknown options leave the order untouched.
func SortJobs(jobs []domain.Job, by JobSortOption) {
	var less func(a, b *domain.Job) bool
	switch by {
	case JobSortDateAsc:
		less = func(a, b *domain.Job) bool { return jobKey(a) < jobKey(b) }
	case JobSortDateDesc:
		less = func(a, b *domain.Job) bool { return jobKey(a) > jobKey(b) }
	case JobSortClientAsc:
		less = func(a, b *domain.Job) bool { return lowerLess(a.ClientName, b.ClientName) }
	default:
		return
	}
	sort.SliceStable(jobs, func(i, j int) bool { return less(&jobs[i], &jobs[j]) })
}

func jobKey(j *domain.Job) string {
	day, ok := ParseDay(j.Date)
	if !ok {
		return ""
	}
	return day.Format("2006-01-02") + " " + j.StartTime
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// IsValid reports whether the option names a known ordering
func (o ClientSortOption) IsValid() bool {
	switch o {
	case ClientSortNameAsc, ClientSortNameDesc, ClientSortCreatedDesc,
		ClientSortCreatedAsc, ClientSortCityAsc, ClientSortCityDesc:
		return true
	}
	return false
}

// IsValid reports whether the option names a known ordering
func (o JobSortOption) IsValid() bool {
	switch o {
	case JobSortDateAsc, JobSortDateDesc, JobSortClientAsc:
		return true
	}
	return false
}
