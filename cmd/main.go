package main

import (
	"context"
	"errors"
	"os"

	"github.com/movu-app/movu/internal/services"
	"github.com/movu-app/movu/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	movuService := services.NewMovuService(config.API.BaseURL, nil, config.API.SearchRate)
	apiService := services.NewAPIService(config.API.BaseURL, nil)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Movu:   movuService,
		API:    apiService,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "movu",
		Usage:    "Browse the Movu video catalog and manage your favorites",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
