package models

import (
	"time"

	"github.com/google/uuid"
)

// PhotoID is the application-level identity of a photo. It is assigned once
// during synchronization, is stable for the process lifetime, and is never
// reused. It is distinct from the provider's [AssetRef].
type PhotoID string

// NewPhotoID returns a fresh unique PhotoID.
func NewPhotoID() PhotoID {
	return PhotoID(uuid.NewString())
}

// Photo is a fully materialized photo record: a bounded preview image plus
// the capture timestamp used for ordering and grouping. Both fields are
// immutable after synchronization.
type Photo struct {
	ID    PhotoID
	Image []byte
	Date  time.Time
}
