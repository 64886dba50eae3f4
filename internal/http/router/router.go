package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/tidyhome/dashboard-api/internal/config"
	"github.com/tidyhome/dashboard-api/internal/http/handler"
	"github.com/tidyhome/dashboard-api/internal/http/middleware"
	"github.com/tidyhome/dashboard-api/internal/session"
	"go.uber.org/zap"
)

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	sessions       *session.Store
	rateLimiter    *middleware.RateLimiter
	clientHandler  *handler.ClientHandler
	jobHandler     *handler.JobHandler
	catalogHandler *handler.CatalogHandler
	financeHandler *handler.FinanceHandler
	viewHandler    *handler.ViewHandler
	sessionHandler *handler.SessionHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *session.Store,
	rateLimiter *middleware.RateLimiter,
	clientHandler *handler.ClientHandler,
	jobHandler *handler.JobHandler,
	catalogHandler *handler.CatalogHandler,
	financeHandler *handler.FinanceHandler,
	viewHandler *handler.ViewHandler,
	sessionHandler *handler.SessionHandler,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		sessions:       sessions,
		rateLimiter:    rateLimiter,
		clientHandler:  clientHandler,
		jobHandler:     jobHandler,
		catalogHandler: catalogHandler,
		financeHandler: financeHandler,
		viewHandler:    viewHandler,
		sessionHandler: sessionHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "healthy",
			"sessions": rt.sessions.Len(),
			"locale":   rt.cfg.App.Locale,
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/search", rt.clientHandler.Search)
			r.Get("/{id}", rt.clientHandler.GetByID)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", rt.jobHandler.List)
			r.Get("/{id}", rt.jobHandler.GetByID)
		})

		r.Get("/staff", rt.catalogHandler.ListStaff)

		r.Route("/services", func(r chi.Router) {
			r.Get("/", rt.catalogHandler.ListServices)
			r.Post("/", rt.catalogHandler.CreateService)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Get("/invoices", rt.financeHandler.Invoices)
			r.Get("/expenses", rt.financeHandler.Expenses)
			r.Get("/payroll", rt.financeHandler.Payroll)
			r.Get("/summary", rt.financeHandler.Summary)
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/", rt.viewHandler.List)
			r.Post("/", rt.viewHandler.Create)
			r.Get("/{id}", rt.viewHandler.GetByID)
		})

		r.Post("/sessions", rt.sessionHandler.Create)

		// Everything below acts on the session named in X-Session-ID
		r.Route("/session", func(r chi.Router) {
			r.Use(middleware.RequireSession(rt.sessions))

			r.Get("/filters", rt.sessionHandler.GetFilters)
			r.Put("/filters", rt.sessionHandler.PutFilters)
			r.Post("/views/{id}/apply", rt.sessionHandler.ApplyView)

			r.Route("/selection", func(r chi.Router) {
				r.Get("/", rt.sessionHandler.GetSelection)
				r.Delete("/", rt.sessionHandler.ClearSelection)
				r.Post("/toggle", rt.sessionHandler.ToggleSelection)
				r.Post("/toggle-all", rt.sessionHandler.ToggleAll)
			})

			r.Route("/columns", func(r chi.Router) {
				r.Get("/", rt.sessionHandler.GetColumns)
				r.Post("/reset", rt.sessionHandler.ResetColumns)
				r.Post("/{column}/toggle", rt.sessionHandler.ToggleColumn)
				r.Post("/{column}/up", rt.sessionHandler.MoveColumnUp)
				r.Post("/{column}/down", rt.sessionHandler.MoveColumnDown)
			})
		})
	})

	return r
}
