package service

import (
	"context"
	"fmt"

	"github.com/snapsift/snapsift/internal/config"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
	"github.com/snapsift/snapsift/internal/store"
	"github.com/snapsift/snapsift/models"
)

type Services struct {
	Synchronizer AssetSynchronizer
	Collection   CollectionService
	Entitlement  EntitlementService
	RefreshJob   RefreshJob
}

// NewServices wires the snapsift core: entitlement state is loaded from the
// local store, the synchronizer is bound to the asset provider, and the
// collection store receives both as explicit dependencies.
func NewServices(ctx context.Context, cfg *config.StructuredConfig, assetProvider provider.AssetProvider, storages *store.Storages, log *logger.Logger) (*Services, error) {
	entitlementSvc := NewEntitlementService(storages.Settings, cfg.App.BillingDelay, log)
	if err := entitlementSvc.Load(ctx); err != nil {
		return nil, fmt.Errorf("load entitlement state: %w", err)
	}

	targetSize := models.ImageSize{
		Width:  cfg.Provider.TargetWidth,
		Height: cfg.Provider.TargetHeight,
	}
	synchronizer := NewAssetSynchronizer(assetProvider, targetSize, log)

	collection := NewCollectionService(synchronizer, assetProvider, entitlementSvc, cfg.App.FreeQuota, log)
	entitlementSvc.OnChange(collection.EntitlementChanged)

	return &Services{
		Synchronizer: synchronizer,
		Collection:   collection,
		Entitlement:  entitlementSvc,
		RefreshJob:   NewRefreshJob(collection),
	}, nil
}
