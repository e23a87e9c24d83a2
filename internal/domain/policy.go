package domain

// RefreshPolicy describes how a cache mutation reconciles the local list
// with the server after the remote call succeeds.
type RefreshPolicy int

const (
	// FullRefresh discards the cached list and refetches it entirely.
	// Used when the remote effect changes which items exist but the new
	// item's identity or position cannot be predicted locally.
	FullRefresh RefreshPolicy = iota

	// IncrementalAppend adds one fully-known item without refetching the
	// rest of the list.
	IncrementalAppend

	// TrustCallerIndex mutates at the caller-supplied index with no
	// staleness check. If the cached list was reordered or refetched since
	// the index was obtained, the wrong item is removed with no detection.
	TrustCallerIndex
)

// Per-mutation reconciliation policy for the user caches. This table is the
// contract; the operation implementations in user.go follow it.
var MutationPolicy = map[string]RefreshPolicy{
	"newPlaylist":      FullRefresh,      // server assigns id and ordering
	"removePlaylist":   FullRefresh,      // local index of the removed id is unknown
	"removePlaylistAt": TrustCallerIndex, // caller vouches for the index
	"newFriend":        IncrementalAppend, // the friend's profile is fetched once
	"removeFriend":     FullRefresh,
	"removeFriendAt":   TrustCallerIndex,
}
