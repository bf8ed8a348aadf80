// Package app contains shared application-layer message constants used
// across the snapsift services and terminal UI.
//
// All Msg* constants are human-readable strings surfaced to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the application.
package app

const (
	// MsgNothingToDelete is reported when deletion is confirmed with an
	// empty bin (or a bin whose photos could not be resolved).
	MsgNothingToDelete = "no photos in the bin to delete"

	// MsgConfirmDeletionFmt asks the user to approve a permanent bulk
	// delete of the given number of photos.
	MsgConfirmDeletionFmt = "permanently delete %d photos?"

	// MsgPhotosDeletedFmt reports a successful permanent deletion.
	MsgPhotosDeletedFmt = "%d photos permanently deleted"

	// MsgDeleteFailedFmt reports a provider-side bulk delete failure. The
	// collection is left untouched; the user may confirm and retry.
	MsgDeleteFailedFmt = "could not delete photos: %v"

	// MsgLibraryAccessDenied is reported when the asset provider has not
	// granted library access.
	MsgLibraryAccessDenied = "photo library access not granted"

	// MsgRefreshFailed is reported when synchronization with the asset
	// provider fails for a reason other than authorization.
	MsgRefreshFailed = "could not refresh the photo library"

	// MsgRefreshedFmt reports a completed synchronization.
	MsgRefreshedFmt = "%d photos loaded"

	// MsgNoPreviousPurchase is reported when a purchase restore finds no
	// prior purchase on record.
	MsgNoPreviousPurchase = "no previous purchase found"

	// MsgUpgradePrompt invites a free-tier user over quota to upgrade.
	MsgUpgradePrompt = "upgrade to review your full library"
)
