// Package http implements the REST surface of the snapsift photo service.
// The endpoints mirror the client's HTTP provider exactly, so a snapsift
// client configured with -provider http can review and dispose of the
// photos this service exposes.
package http

import (
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
)

type Handler struct {
	provider provider.AssetProvider

	logger *logger.Logger
}

func NewHandler(assetProvider provider.AssetProvider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		provider: assetProvider,
		logger:   logger,
	}
}
