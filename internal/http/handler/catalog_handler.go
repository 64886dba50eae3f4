package handler

import (
	"net/http"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

// CatalogHandler serves staff and the service catalog
type CatalogHandler struct {
	staffService   *service.StaffService
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(staffService *service.StaffService, catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{staffService: staffService, catalogService: catalogService, logger: logger}
}

// ListStaff filters staff by role, status, skill and availability
// GET /staff?role=&status=&skill=&day=&from=&to=
func (h *CatalogHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	staff, err := h.staffService.List(domain.StaffFilters{
		Role:   q.Get("role"),
		Status: q.Get("status"),
		Skill:  q.Get("skill"),
		Day:    q.Get("day"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": staff, "total": len(staff)})
}

// ListServices returns the catalog
// GET /services?active=true
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services := h.catalogService.List(queryBool(r, "active"))
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": services, "total": len(services)})
}

// CreateService adds an active catalog entry
// POST /services
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	svc, err := h.catalogService.Create(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, svc)
}
