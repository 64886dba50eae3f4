package service

import (
	"fmt"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"go.uber.org/zap"
)

// CatalogService manages the list of services the business sells
type CatalogService struct {
	serviceRepo *repository.ServiceRepository
	logger      *zap.Logger
}

func NewCatalogService(serviceRepo *repository.ServiceRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo, logger: logger}
}

// List returns the catalog, optionally only the active entries
func (s *CatalogService) List(activeOnly bool) []domain.Service {
	services := s.serviceRepo.List()
	if !activeOnly {
		return services
	}
	out := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out
}

func (s *CatalogService) Create(req *domain.CreateServiceRequest) (*domain.Service, error) {
	if req.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	svc := &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		BasePrice:       req.BasePrice,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	s.serviceRepo.Create(svc)

	s.logger.Info("service created", zap.String("service_id", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}
