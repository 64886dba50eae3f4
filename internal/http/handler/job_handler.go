package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

type JobHandler struct {
	jobService *service.JobService
	logger     *zap.Logger
}

func NewJobHandler(jobService *service.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{jobService: jobService, logger: logger}
}

func jobFiltersFromRequest(r *http.Request) domain.JobFilters {
	q := r.URL.Query()
	return domain.JobFilters{
		Status:        q.Get("status"),
		DateRange:     domain.DateRange{Start: q.Get("from"), End: q.Get("to")},
		StaffIDs:      queryList(r, "staffIds"),
		ServiceIDs:    queryList(r, "serviceIds"),
		ClientName:    q.Get("clientName"),
		ZipCode:       q.Get("zipCode"),
		HasNotes:      queryBool(r, "hasNotes"),
		NeedsFollowUp: queryBool(r, "needsFollowUp"),
		Unassigned:    queryBool(r, "unassigned"),
	}
}

// List returns the jobs matching every facet
// GET /jobs?status=&from=&to=&staffIds=&serviceIds=&clientName=&zipCode=
//
//	&hasNotes=&needsFollowUp=&unassigned=&sortBy=
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.List(service.JobListParams{
		Filters: jobFiltersFromRequest(r),
		SortBy:  query.JobSortOption(r.URL.Query().Get("sortBy")),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  jobs,
		"total": len(jobs),
	})
}

// GetByID returns one job
// GET /jobs/{id}
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}
