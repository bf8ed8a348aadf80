// Package store provides the local persistence layer for snapsift: a small
// sqlite database holding process-wide settings such as the entitlement flag.
//
// Photo collections are deliberately NOT persisted here; they are owned
// in-memory by the service layer and rebuilt from the asset provider on every
// refresh.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is the persistence contract for boolean settings. The
// entitlement flag is read once at startup and written by purchase-lifecycle
// operations.
type SettingsRepository interface {
	// GetBool returns the stored value for key, or false when the key has
	// never been written. Returns an error only on storage failure.
	GetBool(ctx context.Context, key string) (bool, error)

	// SetBool stores value under key, overwriting any previous value.
	SetBool(ctx context.Context, key string, value bool) error
}
