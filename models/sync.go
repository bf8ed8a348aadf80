package models

// SyncBatch is the result of one synchronization pass: photos sorted by
// descending capture date, plus the identity map resolving each photo back
// to a live provider handle. Every photo in Photos has an entry in Refs.
type SyncBatch struct {
	Photos []Photo
	Refs   map[PhotoID]AssetRef
}
