// Package handler wires the transport handlers of the snapsift photo
// service: the HTTP/REST surface the snapsift client's HTTP provider
// consumes.
package handler

import (
	"github.com/snapsift/snapsift/internal/config"
	"github.com/snapsift/snapsift/internal/handler/http"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(assetProvider provider.AssetProvider, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Address != "" {
		handlers.HTTP = http.NewHandler(assetProvider, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
