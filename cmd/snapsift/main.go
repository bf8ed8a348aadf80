package main

import (
	"context"
	"fmt"

	"github.com/snapsift/snapsift/internal/client"
	"github.com/snapsift/snapsift/internal/config"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
	"github.com/snapsift/snapsift/internal/service"
	"github.com/snapsift/snapsift/internal/store"
	"github.com/snapsift/snapsift/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("snapsift")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	assetProvider, err := newAssetProvider(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create asset provider")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, cfg, assetProvider, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, cfg.App.FreeQuota, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func newAssetProvider(cfg *config.StructuredConfig, log *logger.Logger) (provider.AssetProvider, error) {
	switch cfg.Provider.Kind {
	case config.ProviderFS:
		return provider.NewFSProvider(cfg.Provider.Root, log), nil
	case config.ProviderHTTP:
		return provider.NewHTTPProvider(cfg.Provider.Address, cfg.Provider.RequestTimeout, log)
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Provider.Kind)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
