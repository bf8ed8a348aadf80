package models

import "time"

// AccessLevel is the provider's answer to an authorization request.
type AccessLevel int

const (
	AccessNotDetermined AccessLevel = iota
	AccessAuthorized
	AccessLimited
	AccessDenied
	AccessRestricted
)

// Granted reports whether the level allows reading the provider's library.
// Limited access still permits enumeration of the granted subset.
func (l AccessLevel) Granted() bool {
	return l == AccessAuthorized || l == AccessLimited
}

func (l AccessLevel) String() string {
	switch l {
	case AccessNotDetermined:
		return "not determined"
	case AccessAuthorized:
		return "authorized"
	case AccessLimited:
		return "limited"
	case AccessDenied:
		return "denied"
	case AccessRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// AssetRef is an opaque handle to an image resource owned by the asset
// provider. Callers must not interpret the ID; only the provider that issued
// a ref can resolve or delete it.
type AssetRef struct {
	ID string
}

// Asset is one entry of a bulk enumeration: a deletable handle plus the
// capture timestamp the provider recorded for it.
type Asset struct {
	Ref       AssetRef
	CreatedAt time.Time
}

// ImageSize is the bounded target resolution for materialized previews.
type ImageSize struct {
	Width  int
	Height int
}
