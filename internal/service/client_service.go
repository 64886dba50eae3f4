package service

import (
	"fmt"
	"time"

	"github.com/tidyhome/dashboard-api/internal/domain"
	"github.com/tidyhome/dashboard-api/internal/mapper"
	"github.com/tidyhome/dashboard-api/internal/query"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"go.uber.org/zap"
)

// ClientListParams is one request for the client list
type ClientListParams struct {
	Query    domain.ClientQuery
	SortBy   query.ClientSortOption
	Page     int
	PageSize int
}

type ClientService struct {
	clientRepo  *repository.ClientRepository
	jobRepo     *repository.JobRepository
	financeRepo *repository.FinanceRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewClientService(
	clientRepo *repository.ClientRepository,
	jobRepo *repository.JobRepository,
	financeRepo *repository.FinanceRepository,
	now func() time.Time,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		jobRepo:     jobRepo,
		financeRepo: financeRepo,
		now:         now,
		logger:      logger,
	}
}

func (s *ClientService) index() query.ClientIndex {
	return query.BuildClientIndex(s.jobRepo.List(), s.financeRepo.Invoices(), s.now())
}

// Filter returns every client matching the query, in store order
func (s *ClientService) Filter(q domain.ClientQuery) []domain.Client {
	return query.FilterClientsAdvanced(s.clientRepo.List(), q, s.index())
}

// VisibleIDs returns the IDs of the clients the query leaves on screen
func (s *ClientService) VisibleIDs(q domain.ClientQuery) []string {
	clients := s.Filter(q)
	ids := make([]string, len(clients))
	for i := range clients {
		ids[i] = clients[i].ID
	}
	return ids
}

func (s *ClientService) List(params ClientListParams) (*domain.PaginatedResponse, error) {
	if params.SortBy != "" && !params.SortBy.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort option %q", ErrInvalidInput, params.SortBy)
	}
	page, pageSize := clampPage(params.Page, params.PageSize)

	idx := s.index()
	clients := query.FilterClientsAdvanced(s.clientRepo.List(), params.Query, idx)
	query.SortClients(clients, params.SortBy)

	pageClients, totalPages := pageOf(clients, page, pageSize)
	dtos := make([]domain.ClientDTO, len(pageClients))
	for i := range pageClients {
		dtos[i] = mapper.ToClientDTO(&pageClients[i], idx.Facts(pageClients[i].ID))
	}

	s.logger.Debug("client list filtered",
		zap.String("type", params.Query.Type),
		zap.String("search", params.Query.Search),
		zap.Int("matched", len(clients)))

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      int64(len(clients)),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *ClientService) GetByID(id string) (*domain.ClientDTO, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", ErrNotFound)
	}
	dto := mapper.ToClientDTO(client, s.index().Facts(client.ID))
	return &dto, nil
}

// Search finds the single client best matching a loosely typed name or email
func (s *ClientService) Search(term string) domain.FuzzyClientSearchResponse {
	match, ok := query.BestClientMatch(s.clientRepo.List(), term)
	if !ok {
		return domain.FuzzyClientSearchResponse{Found: false}
	}
	return domain.FuzzyClientSearchResponse{
		Found: true,
		ID:    match.Client.ID,
		Name:  match.Client.Name,
		Score: match.Score,
	}
}

func (s *ClientService) Create(req *domain.CreateClientRequest) (*domain.ClientDTO, error) {
	client, err := mapper.ToClient(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	s.clientRepo.Create(client)

	s.logger.Info("client created", zap.String("client_id", client.ID), zap.String("name", client.Name))

	dto := mapper.ToClientDTO(client, s.index().Facts(client.ID))
	return &dto, nil
}
