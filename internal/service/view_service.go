package service

import (
	"fmt"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"go.uber.org/zap"
)

// ViewService manages saved job filter views
type ViewService struct {
	viewRepo *repository.ViewRepository
	logger   *zap.Logger
}

func NewViewService(viewRepo *repository.ViewRepository, logger *zap.Logger) *ViewService {
	return &ViewService{viewRepo: viewRepo, logger: logger}
}

func (s *ViewService) List() []domain.SavedView {
	return s.viewRepo.List()
}

func (s *ViewService) GetByID(id string) (*domain.SavedView, error) {
	view, err := s.viewRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get view: %w", ErrNotFound)
	}
	return view, nil
}

// Create saves a snapshot of the filters under the given name
func (s *ViewService) Create(req *domain.CreateViewRequest) domain.SavedView {
	view := s.viewRepo.Create(req.Name, req.Filters)
	s.logger.Info("saved view created", zap.String("view_id", view.ID), zap.String("name", view.Name))
	return view
}
