package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tidyhome/dashboard-api/internal/cli"
	"github.com/tidyhome/dashboard-api/internal/config"
	"github.com/tidyhome/dashboard-api/internal/prefs"
	"github.com/tidyhome/dashboard-api/internal/seed"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ds, err := seed.LoadFile(cfg.Seed.Path)
	if err != nil {
		return err
	}

	env := cli.NewEnv(ds, prefs.NewStore(cfg.Preferences.Path, cfg.App.Locale), time.Now, zap.NewNop())
	return cli.NewRootCmd(env).Execute()
}
