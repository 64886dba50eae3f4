// Package cli implements the dashctl operator commands. They run the same
// services as the API against the seed data, without a server.
package cli

import (
	"time"

	"github.com/tidyhome/dashboard-api/internal/prefs"
	"github.com/tidyhome/dashboard-api/internal/repository"
	"github.com/tidyhome/dashboard-api/internal/seed"
	"github.com/tidyhome/dashboard-api/internal/service"
	"go.uber.org/zap"
)

// Env is what the commands run against
type Env struct {
	Clients *service.ClientService
	Jobs    *service.JobService
	Prefs   *prefs.Store
}

// NewEnv wires the services over a dataset. now is the clock balances and
// upcoming jobs are computed against.
func NewEnv(ds *seed.Dataset, prefsStore *prefs.Store, now func() time.Time, logger *zap.Logger) *Env {
	store := repository.NewStore(ds)
	store.SetClock(now)

	jobRepo := repository.NewJobRepository(store)
	return &Env{
		Clients: service.NewClientService(
			repository.NewClientRepository(store),
			jobRepo,
			repository.NewFinanceRepository(store),
			store.Now,
			logger,
		),
		Jobs:  service.NewJobService(jobRepo, logger),
		Prefs: prefsStore,
	}
}

// locale returns the saved language, falling back to the default on error
func (e *Env) locale() string {
	p, err := e.Prefs.Load()
	if err != nil {
		return prefs.DefaultLocale
	}
	return p.Locale
}
