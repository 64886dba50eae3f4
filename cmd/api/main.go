package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tidyhome/dashboard-api/internal/config"
	"github.com/tidyhome/dashboard-api/internal/http/handler"
	"github.com/tidyhome/dashboard-api/internal/http/middleware"
	"github.com/tidyhome/dashboard-api/internal/http/router"
	"github.com/tidyhome/dashboard-api/internal/jobs"
	"github.com/tidyhome/dashboard-api/internal/logger"
	"github.com/tidyhome/dashboard-api/internal/prefs"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"github.com/tidyhome/dashboard-api/internal/seed"
	"github.com/tidyhome/dashboard-api/internal/service"
	"github.com/tidyhome/dashboard-api/internal/session"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// A saved language preference wins over app.locale
	preferences, err := prefs.NewStore(cfg.Preferences.Path, cfg.App.Locale).Load()
	if err != nil {
		log.Warn("Failed to read preferences, using configured locale", zap.Error(err))
	} else {
		cfg.App.Locale = preferences.Locale
	}

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
		zap.String("locale", cfg.App.Locale),
	)

	// An empty seed path loads the embedded demo data
	dataset, err := seed.LoadFile(cfg.Seed.Path)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}
	log.Info("Seed data loaded",
		zap.String("path", cfg.Seed.Path),
		zap.Int("clients", len(dataset.Clients)),
		zap.Int("jobs", len(dataset.Jobs)),
	)

	// Initialize repositories
	store := repository.NewStore(dataset)
	clientRepo := repository.NewClientRepository(store)
	jobRepo := repository.NewJobRepository(store)
	staffRepo := repository.NewStaffRepository(store)
	serviceRepo := repository.NewServiceRepository(store)
	financeRepo := repository.NewFinanceRepository(store)
	viewRepo := repository.NewViewRepository(store)

	// Initialize services
	clientService := service.NewClientService(clientRepo, jobRepo, financeRepo, store.Now, log)
	jobService := service.NewJobService(jobRepo, log)
	staffService := service.NewStaffService(staffRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, log)
	financeService := service.NewFinanceService(financeRepo, staffRepo, store.Now, log)
	viewService := service.NewViewService(viewRepo, log)

	sessions := session.NewStore(cfg.Session.IdleTimeout(), log)

	// Initialize middleware and handlers
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(
		cfg,
		log,
		sessions,
		rateLimiter,
		handler.NewClientHandler(clientService, log),
		handler.NewJobHandler(jobService, log),
		handler.NewCatalogHandler(staffService, catalogService, log),
		handler.NewFinanceHandler(financeService, log),
		handler.NewViewHandler(viewService, log),
		handler.NewSessionHandler(sessions, clientService, viewService, log),
	)

	scheduler := jobs.NewScheduler(log)
	if err := jobs.RegisterSessionSweepJob(scheduler, sessions, log, cfg.Session.SweepCron); err != nil {
		return fmt.Errorf("failed to register session sweep: %w", err)
	}
	scheduler.Start()
	log.Info("Scheduler started",
		zap.Strings("jobs", scheduler.JobNames()),
		zap.Duration("session_idle_timeout", cfg.Session.IdleTimeout()),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		<-scheduler.Stop().Done()
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		<-scheduler.Stop().Done()
		log.Info("Scheduler stopped")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully", zap.Int("open_sessions", sessions.Len()))
	}

	return nil
}
