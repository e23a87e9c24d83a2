package domain

import "context"

// CatalogClient is the remote catalog-and-social service the model mediates
// reads and writes against. Implementations own transport, marshaling and
// auth-header attachment; this layer only consumes the record shapes.
//
// All calls block until the service responds or ctx is done. No retries are
// performed here; failures propagate unchanged.
type CatalogClient interface {
	// === Session ===

	// Login authenticates and returns the account record on success
	Login(ctx context.Context, mail, pass string) (AccountRecord, error)

	// Logout invalidates the current session token
	Logout(ctx context.Context) error

	// Signup registers a new account
	Signup(ctx context.Context, mail, name, username, pass string) error

	// === Search ===

	// SearchProfiles returns profiles matching the filters
	SearchProfiles(ctx context.Context, name, username string, skip, limit int) ([]ProfileRecord, error)

	// SearchSongs returns songs matching the filters
	SearchSongs(ctx context.Context, name, author, genre string, skip, limit int) ([]SongRecord, error)

	// SearchAlbums returns albums matching the filters
	SearchAlbums(ctx context.Context, name, author string, skip, limit int) ([]AlbumRecord, error)

	// SearchAuthors returns authors matching the filters
	SearchAuthors(ctx context.Context, name string, skip, limit int) ([]AuthorRecord, error)

	// SearchPlaylists returns all playlists owned by the given username
	SearchPlaylists(ctx context.Context, ownerUsername string) ([]PlaylistRecord, error)

	// === Fetch by id ===

	GetPlaylist(ctx context.Context, id string) (PlaylistRecord, error)
	GetAlbum(ctx context.Context, id string) (AlbumRecord, error)
	GetSong(ctx context.Context, id string) (SongRecord, error)
	GetAuthor(ctx context.Context, id string) (AuthorRecord, error)

	// GetUser returns the public profile for a user id
	GetUser(ctx context.Context, id string) (ProfileRecord, error)

	// GetProfile returns the profile record used to lazily populate a
	// user's friend and playlist caches
	GetProfile(ctx context.Context, id string) (ProfileRecord, error)

	// === Mutation (acting user is implied by the session token) ===

	NewPlaylist(ctx context.Context, name, desc string) error
	RemovePlaylist(ctx context.Context, id string) error
	EditPlaylist(ctx context.Context, id, name, desc string) error
	AddSong(ctx context.Context, playlistID, songID string) error
	RemoveSong(ctx context.Context, playlistID, songID string) error

	NewFriend(ctx context.Context, id string) error
	RemoveFriend(ctx context.Context, id string) error

	EditUserInfo(ctx context.Context, username, name, bio string) error
	EditUserCredentials(ctx context.Context, mail, pass string) error
}
