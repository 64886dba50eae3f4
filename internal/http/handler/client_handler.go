package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

type ClientHandler struct {
	clientService *service.ClientService
	logger        *zap.Logger
}

func NewClientHandler(clientService *service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{clientService: clientService, logger: logger}
}

// clientQueryFromRequest reads the client filter from query parameters
func clientQueryFromRequest(r *http.Request) domain.ClientQuery {
	q := r.URL.Query()
	return domain.ClientQuery{
		Type:   q.Get("type"),
		Search: q.Get("search"),
		Advanced: domain.ClientAdvancedFilters{
			Tags:             queryList(r, "tags"),
			Status:           q.Get("status"),
			LastServiceRange: domain.DateRange{Start: q.Get("lastServiceFrom"), End: q.Get("lastServiceTo")},
			NextJobRange:     domain.DateRange{Start: q.Get("nextJobFrom"), End: q.Get("nextJobTo")},
			BalanceStatus:    domain.BalanceStatus(q.Get("balanceStatus")),
			ZipCodes:         queryList(r, "zipCodes"),
			StaffIDs:         queryList(r, "staffIds"),
		},
	}
}

// List returns one page of clients matching the type, search and advanced filters
// GET /clients?type=&search=&tags=&status=&zipCodes=&staffIds=&balanceStatus=
//
//	&lastServiceFrom=&lastServiceTo=&nextJobFrom=&nextJobTo=&sortBy=&page=&pageSize=
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientService.List(service.ClientListParams{
		Query:    clientQueryFromRequest(r),
		SortBy:   query.ClientSortOption(r.URL.Query().Get("sortBy")),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Search finds the client best matching a loosely typed name or email
// GET /clients/search?q=
func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		respondWithError(w, http.StatusBadRequest, "q is required")
		return
	}
	respondJSON(w, http.StatusOK, h.clientService.Search(term))
}

// GetByID returns one client with its derived columns
// GET /clients/{id}
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	client, err := h.clientService.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// Create adds a client. At least one contact is required.
// POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/api/v1/clients/"+client.ID)
	respondJSON(w, http.StatusCreated, client)
}
