package provider

import "errors"

var (
	// ErrUnauthorized indicates the provider has not granted library access.
	ErrUnauthorized = errors.New("provider access not granted")
	// ErrNotFound indicates the requested asset no longer exists.
	ErrNotFound = errors.New("asset not found")
	// ErrBadRequest indicates the provider rejected the request as malformed.
	ErrBadRequest = errors.New("bad provider request")
	// ErrForbidden indicates the provider refused the operation.
	ErrForbidden = errors.New("provider operation forbidden")
	// ErrInternal indicates a provider-side failure.
	ErrInternal = errors.New("provider internal error")
	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("provider unavailable")
)
