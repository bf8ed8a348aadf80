package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
	"github.com/snapsift/snapsift/models"
)

type assetSynchronizer struct {
	provider   provider.AssetProvider
	targetSize models.ImageSize
	logger     *logger.Logger
}

// NewAssetSynchronizer constructs an [AssetSynchronizer] materializing
// previews at the given bounded target size.
func NewAssetSynchronizer(assetProvider provider.AssetProvider, targetSize models.ImageSize, log *logger.Logger) AssetSynchronizer {
	return &assetSynchronizer{provider: assetProvider, targetSize: targetSize, logger: log}
}

// Synchronize implements [AssetSynchronizer].
func (s *assetSynchronizer) Synchronize(ctx context.Context) (models.SyncBatch, error) {
	empty := models.SyncBatch{Refs: make(map[models.PhotoID]models.AssetRef)}

	level, err := s.provider.RequestAccess(ctx)
	if err != nil {
		return empty, fmt.Errorf("request provider access: %w", err)
	}
	if !level.Granted() {
		s.logger.Warn().Str("level", level.String()).Msg("provider access not granted, skipping synchronization")
		return empty, fmt.Errorf("access level %s: %w", level, provider.ErrUnauthorized)
	}

	assets, err := s.provider.FetchAll(ctx)
	if err != nil {
		return empty, fmt.Errorf("enumerate provider assets: %w", err)
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
		// Each worker writes its own enumeration slot, so the pre-sort
		// order is the provider's listing order, never completion order.
		slots = make([]*models.Photo, len(assets))
		refs  = make(map[models.PhotoID]models.AssetRef, len(assets))
	)

	for i, asset := range assets {
		wg.Add(1)
		go func(i int, a models.Asset) {
			defer wg.Done()

			image, err := s.provider.ResolveImage(ctx, a.Ref, s.targetSize)
			if err != nil {
				// Excluded from the batch, not retried.
				s.logger.Warn().Err(err).Str("asset", a.Ref.ID).Msg("preview materialization failed, asset skipped")
				return
			}

			photo := &models.Photo{
				ID:    models.NewPhotoID(),
				Image: image,
				Date:  a.CreatedAt,
			}
			slots[i] = photo

			mu.Lock()
			refs[photo.ID] = a.Ref
			mu.Unlock()
		}(i, asset)
	}

	// The batch is complete only when every materialization has finished.
	wg.Wait()

	photos := make([]models.Photo, 0, len(assets))
	for _, photo := range slots {
		if photo != nil {
			photos = append(photos, *photo)
		}
	}

	// Stable sort over the enumeration order: equal capture dates keep the
	// provider's listing order, so the final ordering is deterministic.
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].Date.After(photos[j].Date)
	})

	s.logger.Debug().Int("assets", len(assets)).Int("photos", len(photos)).Msg("synchronization finished")

	return models.SyncBatch{Photos: photos, Refs: refs}, nil
}
