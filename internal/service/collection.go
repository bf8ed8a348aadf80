package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/snapsift/snapsift/internal/app"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/provider"
	"github.com/snapsift/snapsift/models"
)

type collectionService struct {
	synchronizer AssetSynchronizer
	provider     provider.AssetProvider
	entitlement  EntitlementChecker
	freeQuota    int
	logger       *logger.Logger

	mu           sync.Mutex
	active       []models.Photo
	bin          []models.Photo
	refs         map[models.PhotoID]models.AssetRef
	pendingRefs  []models.AssetRef
	pendingIDs   []models.PhotoID
	refreshing   bool
	deleting     bool
	unauthorized bool
	status       string

	quotaCh chan struct{}
}

// NewCollectionService constructs the lifecycle store. The entitlement
// checker is an explicit dependency; the store holds no global state.
func NewCollectionService(synchronizer AssetSynchronizer, assetProvider provider.AssetProvider, entitlement EntitlementChecker, freeQuota int, log *logger.Logger) CollectionService {
	return &collectionService{
		synchronizer: synchronizer,
		provider:     assetProvider,
		entitlement:  entitlement,
		freeQuota:    freeQuota,
		logger:       log,
		refs:         make(map[models.PhotoID]models.AssetRef),
		quotaCh:      make(chan struct{}, 1),
	}
}

// Refresh implements [CollectionService]. The synchronizer runs outside the
// lock; the lock is re-acquired before the batch replaces the collection, so
// local mutations issued mid-refresh act on the previous collection and are
// superseded on completion.
func (c *collectionService) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		c.logger.Debug().Msg("refresh already in flight, ignoring")
		return nil
	}
	c.refreshing = true
	c.active = nil
	c.refs = make(map[models.PhotoID]models.AssetRef)
	c.mu.Unlock()

	batch, err := c.synchronizer.Synchronize(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshing = false

	if err != nil {
		if errors.Is(err, provider.ErrUnauthorized) {
			c.unauthorized = true
			c.status = app.MsgLibraryAccessDenied
		} else {
			c.status = app.MsgRefreshFailed
		}
		return fmt.Errorf("synchronize collection: %w", err)
	}

	c.unauthorized = false
	c.active = batch.Photos
	c.refs = batch.Refs
	c.status = fmt.Sprintf(app.MsgRefreshedFmt, len(c.active))
	c.notifyQuotaLocked()

	return nil
}

func (c *collectionService) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

func (c *collectionService) Unauthorized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unauthorized
}

// StageForDeletion implements [CollectionService].
func (c *collectionService) StageForDeletion(id models.PhotoID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, photo := range c.active {
		if photo.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			c.bin = append(c.bin, photo)
			return
		}
	}
}

// Restore implements [CollectionService]. The photo re-enters active at the
// head, treated as most-recently-seen.
func (c *collectionService) Restore(id models.PhotoID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restoreLocked([]models.PhotoID{id})
}

// RestoreMany implements [CollectionService].
func (c *collectionService) RestoreMany(ids []models.PhotoID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restoreLocked(ids)
}

func (c *collectionService) restoreLocked(ids []models.PhotoID) {
	restored := make([]models.Photo, 0, len(ids))
	for _, id := range ids {
		for i, photo := range c.bin {
			if photo.ID == id {
				c.bin = append(c.bin[:i], c.bin[i+1:]...)
				restored = append(restored, photo)
				break
			}
		}
	}

	if len(restored) == 0 {
		return
	}

	c.active = append(restored, c.active...)
}

// DeleteFromBin implements [CollectionService].
func (c *collectionService) DeleteFromBin(id models.PhotoID) {
	c.DeleteMany([]models.PhotoID{id})
}

// DeleteMany implements [CollectionService]. Bookkeeping only; the provider
// is never touched.
func (c *collectionService) DeleteMany(ids []models.PhotoID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		for i, photo := range c.bin {
			if photo.ID == id {
				c.bin = append(c.bin[:i], c.bin[i+1:]...)
				break
			}
		}
	}
}

// ConfirmPermanentDeletion implements [CollectionService]. The snapshot is
// decoupled from the live bin: mutations during the confirm-commit window do
// not alter what is deleted.
func (c *collectionService) ConfirmPermanentDeletion() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingRefs = nil
	c.pendingIDs = nil

	if len(c.bin) == 0 {
		c.status = app.MsgNothingToDelete
		return false
	}

	kept := c.bin[:0]
	for _, photo := range c.bin {
		ref, ok := c.refs[photo.ID]
		if !ok {
			// Identity lost (e.g. staged before a refresh); the photo
			// cannot be deleted at the provider, so it is dropped here.
			c.logger.Warn().Str("photo", string(photo.ID)).Msg("bin photo unresolvable, dropped at confirmation")
			continue
		}
		kept = append(kept, photo)
		c.pendingRefs = append(c.pendingRefs, ref)
		c.pendingIDs = append(c.pendingIDs, photo.ID)
	}
	c.bin = kept

	if len(c.pendingRefs) == 0 {
		c.status = app.MsgNothingToDelete
		return false
	}

	c.status = fmt.Sprintf(app.MsgConfirmDeletionFmt, len(c.pendingRefs))
	return true
}

func (c *collectionService) PendingDeletionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pendingRefs)
}

// CancelPermanentDeletion implements [CollectionService].
func (c *collectionService) CancelPermanentDeletion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingRefs = nil
	c.pendingIDs = nil
}

// CommitPermanentDeletion implements [CollectionService].
func (c *collectionService) CommitPermanentDeletion(ctx context.Context) error {
	c.mu.Lock()
	if len(c.pendingRefs) == 0 || c.deleting {
		c.mu.Unlock()
		return nil
	}
	c.deleting = true
	refs := append([]models.AssetRef(nil), c.pendingRefs...)
	ids := append([]models.PhotoID(nil), c.pendingIDs...)
	c.mu.Unlock()

	err := c.provider.Delete(ctx, refs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleting = false
	c.pendingRefs = nil
	c.pendingIDs = nil

	if err != nil {
		c.status = fmt.Sprintf(app.MsgDeleteFailedFmt, err)
		return fmt.Errorf("provider bulk delete: %w", err)
	}

	deleted := make(map[models.PhotoID]struct{}, len(ids))
	for _, id := range ids {
		deleted[id] = struct{}{}
		delete(c.refs, id)
	}

	kept := c.bin[:0]
	for _, photo := range c.bin {
		if _, ok := deleted[photo.ID]; ok {
			continue
		}
		kept = append(kept, photo)
	}
	c.bin = kept

	c.status = fmt.Sprintf(app.MsgPhotosDeletedFmt, len(ids))
	c.logger.Info().Int("count", len(ids)).Msg("permanent deletion committed")

	return nil
}

func (c *collectionService) Deleting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleting
}

// AvailablePhotos implements [CollectionService].
func (c *collectionService) AvailablePhotos() []models.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entitlement.IsEntitled() || len(c.active) <= c.freeQuota {
		return append([]models.Photo(nil), c.active...)
	}
	return append([]models.Photo(nil), c.active[:c.freeQuota]...)
}

// ReviewPhotos implements [CollectionService]. Pure read: the upgrade prompt
// travels through QuotaEvents, never through this call.
func (c *collectionService) ReviewPhotos() []models.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.entitlement.IsEntitled() && len(c.active) > c.freeQuota {
		return []models.Photo{}
	}
	return append([]models.Photo(nil), c.active...)
}

// BinPhotos implements [CollectionService].
func (c *collectionService) BinPhotos() []models.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Photo(nil), c.bin...)
}

// IsOverQuota implements [CollectionService].
func (c *collectionService) IsOverQuota() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOverQuotaLocked()
}

func (c *collectionService) isOverQuotaLocked() bool {
	return !c.entitlement.IsEntitled() && len(c.active) > c.freeQuota
}

// QuotaEvents implements [CollectionService].
func (c *collectionService) QuotaEvents() <-chan struct{} {
	return c.quotaCh
}

// EntitlementChanged implements [CollectionService].
func (c *collectionService) EntitlementChanged() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifyQuotaLocked()
}

func (c *collectionService) notifyQuotaLocked() {
	if !c.isOverQuotaLocked() {
		return
	}
	select {
	case c.quotaCh <- struct{}{}:
	default:
	}
}

// Status implements [CollectionService].
func (c *collectionService) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
