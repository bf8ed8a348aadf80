// snapsift-photoserver exposes a local photo directory over the REST API
// the snapsift client's http provider consumes. It is the remote side of a
// `snapsift -provider http` setup.
package main

import (
	"fmt"

	"github.com/snapsift/snapsift/internal/config"
	"github.com/snapsift/snapsift/internal/handler"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
	"github.com/snapsift/snapsift/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("snapsift-photoserver")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	assetProvider := provider.NewFSProvider(cfg.Provider.Root, log)

	handlers, err := handler.NewHandlers(assetProvider, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	log.Info().Str("address", cfg.Server.Address).Str("root", cfg.Provider.Root).Msg("serving photo directory")
	srv.RunServer()
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
