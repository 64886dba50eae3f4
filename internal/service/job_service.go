package service

import (
	"fmt"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"go.uber.org/zap"
)

// JobListParams is one request for the job list
type JobListParams struct {
	Filters domain.JobFilters
	SortBy  query.JobSortOption
}

type JobService struct {
	jobRepo *repository.JobRepository
	logger  *zap.Logger
}

func NewJobService(jobRepo *repository.JobRepository, logger *zap.Logger) *JobService {
	return &JobService{jobRepo: jobRepo, logger: logger}
}

// List filters and sorts the job list. The result is never nil.
func (s *JobService) List(params JobListParams) ([]domain.Job, error) {
	if params.SortBy != "" && !params.SortBy.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort option %q", ErrInvalidInput, params.SortBy)
	}
	jobs := query.FilterJobs(s.jobRepo.List(), params.Filters)
	query.SortJobs(jobs, params.SortBy)

	s.logger.Debug("job list filtered", zap.Int("matched", len(jobs)))
	return jobs, nil
}

func (s *JobService) GetByID(id string) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", ErrNotFound)
	}
	return job, nil
}
