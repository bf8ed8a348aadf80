// Package provider defines the asset-provider port: the external photo store
// that owns the actual image resources.
//
// The primary abstraction is [AssetProvider], which decouples the service
// layer from where photos physically live. The package ships two adapters: a
// filesystem implementation ([NewFSProvider]) for a local photo directory and
// an HTTP/REST implementation ([NewHTTPProvider]) for a remote photo service.
//
// Error values defined in errors.go are mapped from transport failures so
// that callers can use [errors.Is] for provider-agnostic error handling
// (e.g. [ErrUnauthorized] when access has not been granted).
package provider

import (
	"context"

	"github.com/snapsift/snapsift/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/asset_provider_mock.go -package=mock

// AssetProvider is the contract with the external photo store. The
// application never observes raw storage below this interface; assets are
// addressed exclusively through opaque [models.AssetRef] handles.
type AssetProvider interface {
	// RequestAccess performs the authorization handshake and reports the
	// current permission level. It is safe to call repeatedly; providers
	// must not prompt more than the underlying platform requires.
	RequestAccess(ctx context.Context) (models.AccessLevel, error)

	// FetchAll enumerates the provider's full image set, returning one
	// [models.Asset] per stored image with its capture timestamp. No
	// ordering is guaranteed. Returns an error on enumeration failure;
	// callers must treat that as a total failure, never a partial listing.
	FetchAll(ctx context.Context) ([]models.Asset, error)

	// ResolveImage materializes the image behind ref at the bounded target
	// size and returns the encoded bytes. Each call is independent; a
	// failure affects only the requested asset.
	ResolveImage(ctx context.Context, ref models.AssetRef, size models.ImageSize) ([]byte, error)

	// Delete permanently removes the given assets from the provider in one
	// batch. The call is atomic-or-nothing at this boundary: on error the
	// caller must assume nothing was removed.
	Delete(ctx context.Context, refs []models.AssetRef) error
}
