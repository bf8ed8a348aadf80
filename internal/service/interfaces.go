// Package service implements the snapsift core: asset synchronization, the
// photo-collection lifecycle store, and entitlement management.
//
// The collection store is the single writer for all photo collections.
// Asynchronous work (bulk enumeration, per-asset materialization, bulk
// delete, simulated billing) runs off the owner and re-acquires the store's
// lock before mutating shared state.
package service

import (
	"context"
	"time"

	"github.com/snapsift/snapsift/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AssetSynchronizer produces a chronologically sorted, fully materialized
// batch of photos from the asset provider, plus the identity map needed for
// later deletion.
type AssetSynchronizer interface {
	// Synchronize enumerates the provider's full image set and materializes
	// a bounded preview for every asset concurrently; it returns only after
	// every materialization has finished. Assets whose preview fails to
	// materialize are excluded without retry. The returned batch is sorted
	// by descending capture date regardless of completion order.
	//
	// When provider access has not been granted, Synchronize performs no
	// fetch and returns an empty batch with a [provider.ErrUnauthorized]
	// error, so callers can tell "unauthorized" from "library empty".
	// Any enumeration failure likewise yields an empty batch, never a
	// partial one. Synchronize never mutates provider data.
	Synchronize(ctx context.Context) (models.SyncBatch, error)
}

// CollectionService is the authoritative owner of the active, bin, and
// pending-deletion collections, the identity map, and the permanent-deletion
// protocol. A photo id belongs to exactly one of {active, bin} from the
// moment it is imported until it is permanently deleted or locally
// discarded.
type CollectionService interface {
	// Refresh replaces the active collection and identity map with a fresh
	// synchronizer batch. A second call while one is outstanding is ignored;
	// two in-flight batches are never interleaved. Bin contents survive a
	// refresh, but their identity entries do not: photos staged before a
	// refresh become unresolvable and are dropped at confirmation time.
	Refresh(ctx context.Context) error

	// Refreshing reports whether a refresh is currently in flight.
	Refreshing() bool

	// Unauthorized reports whether the last refresh failed because provider
	// access has not been granted, distinguishing an empty collection from
	// an inaccessible one.
	Unauthorized() bool

	// StageForDeletion moves a photo from active to the bin. Unknown ids
	// are ignored; staging is idempotent.
	StageForDeletion(id models.PhotoID)

	// Restore moves a photo from the bin back to the head of the active
	// collection. Unknown ids are ignored.
	Restore(id models.PhotoID)

	// RestoreMany restores the given photos to the head of active,
	// preserving their relative order as given.
	RestoreMany(ids []models.PhotoID)

	// DeleteFromBin removes a photo from the bin without touching the
	// provider: a purely local discard, distinct from permanent deletion.
	DeleteFromBin(id models.PhotoID)

	// DeleteMany removes the given photos from the bin, bookkeeping only.
	DeleteMany(ids []models.PhotoID)

	// ConfirmPermanentDeletion resolves every bin photo to a provider
	// handle and snapshots the resolved set for commit. Unresolvable photos
	// are dropped from the bin and logged. Returns true when there is
	// something to delete and user confirmation should be requested;
	// false (with a "nothing to delete" status) otherwise.
	ConfirmPermanentDeletion() bool

	// PendingDeletionCount returns the size of the confirmed snapshot.
	PendingDeletionCount() int

	// CancelPermanentDeletion discards the confirmed snapshot without
	// deleting anything.
	CancelPermanentDeletion()

	// CommitPermanentDeletion bulk-deletes the confirmed snapshot through
	// the provider. Without a prior confirmation it is a no-op. On success
	// exactly the snapshotted photos leave the bin and the identity map; on
	// failure both are left untouched. The pending snapshot is cleared
	// either way, and the outcome is surfaced via Status.
	CommitPermanentDeletion(ctx context.Context) error

	// Deleting reports whether a commit is currently in flight.
	Deleting() bool

	// AvailablePhotos returns the browsable collection: all active photos
	// for entitled users, the first free-quota photos otherwise.
	AvailablePhotos() []models.Photo

	// ReviewPhotos returns the triage feed: all active photos for entitled
	// users, an empty slice for free-tier users over quota. The read is
	// pure; the upgrade prompt is signalled via QuotaEvents instead.
	ReviewPhotos() []models.Photo

	// BinPhotos returns the current bin contents.
	BinPhotos() []models.Photo

	// IsOverQuota reports whether a free-tier user has more active photos
	// than the free quota allows.
	IsOverQuota() bool

	// QuotaEvents emits one event whenever a refresh or entitlement change
	// leaves the user over quota. Reads never emit.
	QuotaEvents() <-chan struct{}

	// EntitlementChanged re-evaluates the quota after an entitlement
	// change. Invoked by the entitlement service, not the UI.
	EntitlementChanged()

	// Status returns the last user-facing outcome message. Errors are
	// resolved to this field; none are fatal and the store remains usable
	// after any failure.
	Status() string
}

// EntitlementService owns the process-wide entitlement flag. The flag is
// loaded once at startup and mutated only by the three purchase-lifecycle
// operations, each of which persists the new value.
type EntitlementService interface {
	// Load reads the persisted entitlement flag. Called once during wiring.
	Load(ctx context.Context) error

	// Upgrade simulates a purchase round trip and grants the entitlement.
	Upgrade(ctx context.Context) error

	// Restore simulates a restore round trip; it re-grants the entitlement
	// only when a previous purchase is on record, otherwise it reports
	// "no previous purchase found" via Err.
	Restore(ctx context.Context) error

	// Reset revokes the entitlement (debug/testing aid).
	Reset(ctx context.Context) error

	// IsEntitled returns the current entitlement flag.
	IsEntitled() bool

	// InFlight reports whether a purchase-lifecycle operation is running.
	InFlight() bool

	// Err returns the last entitlement error message, or "".
	Err() string

	// OnChange registers a callback invoked after every entitlement change.
	OnChange(fn func())
}

// RefreshJob is a background worker that periodically re-synchronizes the
// collection with the asset provider.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// EntitlementChecker is the read-only entitlement view the collection store
// depends on. Injected at construction; no hidden process-wide state.
type EntitlementChecker interface {
	IsEntitled() bool
}
