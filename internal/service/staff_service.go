package service

import (
	"fmt"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"go.uber.org/zap"
)

type StaffService struct {
	staffRepo *repository.StaffRepository
	logger    *zap.Logger
}

func NewStaffService(staffRepo *repository.StaffRepository, logger *zap.Logger) *StaffService {
	return &StaffService{staffRepo: staffRepo, logger: logger}
}

// List filters the staff list. A time window needs a day, and the times
// must be "HH:MM". A one-digit hour is accepted.
func (s *StaffService) List(filters domain.StaffFilters) ([]domain.StaffMember, error) {
	if filters.Day != "" && !query.IsWeekday(filters.Day) {
		return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, filters.Day)
	}
	if filters.Day == "" && (filters.From != "" || filters.To != "") {
		return nil, fmt.Errorf("%w: from and to require a day", ErrInvalidInput)
	}
	for _, t := range []*string{&filters.From, &filters.To} {
		if *t == "" {
			continue
		}
		clock, ok := query.NormalizeClock(*t)
		if !ok {
			return nil, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidInput, *t)
		}
		*t = clock
	}
	if filters.From != "" && filters.To != "" && filters.From > filters.To {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	return query.FilterStaff(s.staffRepo.List(), filters), nil
}

func (s *StaffService) GetByID(id string) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", ErrNotFound)
	}
	return member, nil
}
