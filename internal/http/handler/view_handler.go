package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

// ViewHandler serves saved job filter views
type ViewHandler struct {
	viewService *service.ViewService
	logger      *zap.Logger
}

func NewViewHandler(viewService *service.ViewService, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{viewService: viewService, logger: logger}
}

// List GET /views
func (h *ViewHandler) List(w http.ResponseWriter, r *http.Request) {
	views := h.viewService.List()
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": views, "total": len(views)})
}

// GetByID GET /views/{id}
func (h *ViewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	view, err := h.viewService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Create saves the given filters under a name
// POST /views
func (h *ViewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateViewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	view := h.viewService.Create(&req)
	w.Header().Set("Location", "/api/v1/views/"+view.ID)
	respondJSON(w, http.StatusCreated, view)
}
