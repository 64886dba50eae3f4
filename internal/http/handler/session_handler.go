package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tidyhome/dashboard-api/internal/columns"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/http/middleware"
	"github.com/tidyhome/dashboard-api/internal/logger"
	"github.com/tidyhome/dashboard-api/internal/service"
	"github.com/tidyhome/dashboard-api/internal/session"
	"go.uber.org/zap"
)

// SessionHandler serves the per-dashboard state: active filters, the
// client selection and the column layout
type SessionHandler struct {
	sessions      *session.Store
	clientService *service.ClientService
	viewService   *service.ViewService
	logger        *zap.Logger
}

func NewSessionHandler(
	sessions *session.Store,
	clientService *service.ClientService,
	viewService *service.ViewService,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:      sessions,
		clientService: clientService,
		viewService:   viewService,
		logger:        logger,
	}
}

// withSession runs fn against the request's session. On failure it writes
// the error response and returns false.
func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) bool {
	id, err := middleware.SessionIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, middleware.SessionIDHeader+" header is required")
		return false
	}
	if err := h.sessions.With(id, fn); err != nil {
		respondServiceError(w, logger.WithSession(h.logger, id), err)
		return false
	}
	return true
}

func (h *SessionHandler) snapshot(s *session.Session) domain.SessionDTO {
	return s.Snapshot(h.clientService.VisibleIDs(s.ClientQuery))
}

func columnsDTO(cfg *columns.Config) domain.ColumnsDTO {
	visible := cfg.Columns()
	dto := domain.ColumnsDTO{
		Visible:   make([]string, len(visible)),
		Available: make([]string, len(columns.Toggleable)),
	}
	for i, c := range visible {
		dto.Visible[i] = string(c)
	}
	for i, c := range columns.Toggleable {
		dto.Available[i] = string(c)
	}
	return dto
}

// Create starts a dashboard session. The ID is returned in the body and in
// the X-Session-ID header.
// POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	created := h.sessions.Create()

	var snap domain.SessionDTO
	err := h.sessions.With(created.ID, func(s *session.Session) error {
		snap = h.snapshot(s)
		return nil
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	w.Header().Set(middleware.SessionIDHeader, created.ID)
	respondJSON(w, http.StatusCreated, snap)
}

// GetFilters returns the whole session state
// GET /session/filters
func (h *SessionHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	var snap domain.SessionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		snap = h.snapshot(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, snap)
	}
}

// PutFilters replaces the job filter, the client query or both. Selected
// clients the new client query hides are deselected.
// PUT /session/filters
func (h *SessionHandler) PutFilters(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSessionFiltersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var snap domain.SessionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		if req.JobFilters != nil {
			s.ApplyJobFilters(*req.JobFilters)
		}
		if req.ClientQuery != nil {
			dropped := s.ApplyClientQuery(*req.ClientQuery, h.clientService.VisibleIDs(*req.ClientQuery))
			if dropped > 0 {
				logger.WithSession(h.logger, s.ID).Debug("selection pruned", zap.Int("dropped", dropped))
			}
		}
		snap = h.snapshot(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, snap)
	}
}

// ApplyView copies a saved view's filters into the session
// POST /session/views/{id}/apply
func (h *SessionHandler) ApplyView(w http.ResponseWriter, r *http.Request) {
	view, err := h.viewService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	var snap domain.SessionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		s.ApplyView(view)
		snap = h.snapshot(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, snap)
	}
}

func (h *SessionHandler) selectionDTO(s *session.Session) domain.SelectionDTO {
	visible := h.clientService.VisibleIDs(s.ClientQuery)
	return domain.SelectionDTO{
		Selected:    s.Selection.IDs(),
		VisibleIDs:  visible,
		AllSelected: s.Selection.AllSelected(visible),
	}
}

// GetSelection GET /session/selection
func (h *SessionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	var dto domain.SelectionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		dto = h.selectionDTO(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

// ToggleSelection flips one visible client in or out of the selection
// POST /session/selection/toggle
func (h *SessionHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req domain.ToggleSelectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var dto domain.SelectionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		visible := h.clientService.VisibleIDs(s.ClientQuery)
		if !contains(visible, req.ID) && !s.Selection.IsSelected(req.ID) {
			return fmt.Errorf("%w: client %q is not in the current list", service.ErrInvalidInput, req.ID)
		}
		s.Selection.Toggle(req.ID)
		dto = h.selectionDTO(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

// ToggleAll selects every visible client, or clears the selection when they
// already are all selected
// POST /session/selection/toggle-all
func (h *SessionHandler) ToggleAll(w http.ResponseWriter, r *http.Request) {
	var dto domain.SelectionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		s.Selection.ToggleSelectAll(h.clientService.VisibleIDs(s.ClientQuery))
		dto = h.selectionDTO(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

// ClearSelection DELETE /session/selection
func (h *SessionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	var dto domain.SelectionDTO
	if h.withSession(w, r, func(s *session.Session) error {
		s.Selection.Clear()
		dto = h.selectionDTO(s)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

// GetColumns GET /session/columns
func (h *SessionHandler) GetColumns(w http.ResponseWriter, r *http.Request) {
	var dto domain.ColumnsDTO
	if h.withSession(w, r, func(s *session.Session) error {
		dto = columnsDTO(s.Columns)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

// updateColumns applies op to the session's columns and responds with the layout
func (h *SessionHandler) updateColumns(w http.ResponseWriter, r *http.Request, op func(*columns.Config, columns.Column) error) {
	col := columns.Column(chi.URLParam(r, "column"))

	var dto domain.ColumnsDTO
	if h.withSession(w, r, func(s *session.Session) error {
		if err := op(s.Columns, col); err != nil {
			return err
		}
		dto = columnsDTO(s.Columns)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

// ToggleColumn shows or hides a column. The last visible column stays.
// POST /session/columns/{column}/toggle
func (h *SessionHandler) ToggleColumn(w http.ResponseWriter, r *http.Request) {
	h.updateColumns(w, r, func(c *columns.Config, col columns.Column) error {
		_, err := c.Toggle(col)
		return err
	})
}

// MoveColumnUp POST /session/columns/{column}/up
func (h *SessionHandler) MoveColumnUp(w http.ResponseWriter, r *http.Request) {
	h.updateColumns(w, r, (*columns.Config).MoveUp)
}

// MoveColumnDown POST /session/columns/{column}/down
func (h *SessionHandler) MoveColumnDown(w http.ResponseWriter, r *http.Request) {
	h.updateColumns(w, r, (*columns.Config).MoveDown)
}

// ResetColumns POST /session/columns/reset
func (h *SessionHandler) ResetColumns(w http.ResponseWriter, r *http.Request) {
	var dto domain.ColumnsDTO
	if h.withSession(w, r, func(s *session.Session) error {
		s.Columns.ResetToDefault()
		dto = columnsDTO(s.Columns)
		return nil
	}) {
		respondJSON(w, http.StatusOK, dto)
	}
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
