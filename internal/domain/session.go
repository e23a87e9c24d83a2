package domain

import (
	"context"
	"sync"
)

// Session holds zero or one logged-in user for the lifetime of the client.
// It is an explicit object constructed once at startup, not package state;
// the application creates it, logs a user in, works, logs out, discards it.
//
// Every mutating convenience below requires a logged-in user and fails with
// ErrNotAuthenticated otherwise, performing no remote call. This is the sole
// authorization gate in the model: ownership of the mutated entity is implied
// by reaching it through the logged-in user's caches.
type Session struct {
	mu   sync.RWMutex
	user *User
}

// NewSession creates an empty, logged-out session
func NewSession() *Session {
	return &Session{}
}

// IsLoggedIn reports whether a user is logged in
func (s *Session) IsLoggedIn() bool {
	return s.CurrentUser() != nil
}

// CurrentUser returns the logged-in user, or nil
func (s *Session) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// OnLogin installs the user built from a successful authentication.
// Logging in over an existing user is a lifecycle violation and fails with
// ErrAlreadyLoggedIn; log out first.
func (s *Session) OnLogin(rec AccountRecord, client CatalogClient) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		return nil, ErrAlreadyLoggedIn
	}
	user, err := UserFromAccount(rec, client)
	if err != nil {
		return nil, err
	}
	s.user = user
	return user, nil
}

// OnLogout clears the logged-in user
func (s *Session) OnLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// requireUser returns the logged-in user or ErrNotAuthenticated
func (s *Session) requireUser() (*User, error) {
	if u := s.CurrentUser(); u != nil {
		return u, nil
	}
	return nil, ErrNotAuthenticated
}

// FavoritePlaylist returns the logged-in user's favorite playlist: by
// convention the first entry of the playlist cache, not a flagged entity.
// Fails with ErrEmptyCollection when the user has no playlists.
func (s *Session) FavoritePlaylist(ctx context.Context) (*Playlist, error) {
	u, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	playlists, err := u.Playlists(ctx)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, ErrEmptyCollection
	}
	return playlists[0], nil
}

// AuthorsFromFavorite returns the distinct authors of the favorite playlist
func (s *Session) AuthorsFromFavorite(ctx context.Context) ([]Author, error) {
	favorite, err := s.FavoritePlaylist(ctx)
	if err != nil {
		return nil, err
	}
	return favorite.Authors(ctx)
}

// AlbumsFromFavorite returns the distinct albums of the favorite playlist
func (s *Session) AlbumsFromFavorite(ctx context.Context) ([]Album, error) {
	favorite, err := s.FavoritePlaylist(ctx)
	if err != nil {
		return nil, err
	}
	return favorite.Albums(ctx)
}

// AddToFavorite appends a song to the favorite playlist
func (s *Session) AddToFavorite(ctx context.Context, song Song) error {
	favorite, err := s.FavoritePlaylist(ctx)
	if err != nil {
		return err
	}
	return favorite.addSong(ctx, song)
}

// RemoveFromFavorite removes the song at index from the favorite playlist
func (s *Session) RemoveFromFavorite(ctx context.Context, index int) error {
	favorite, err := s.FavoritePlaylist(ctx)
	if err != nil {
		return err
	}
	return favorite.removeSong(ctx, index)
}

// ReorderFavorite swaps two song positions in the favorite playlist.
// Local-only; ordering has no server semantics.
func (s *Session) ReorderFavorite(ctx context.Context, i, j int) error {
	favorite, err := s.FavoritePlaylist(ctx)
	if err != nil {
		return err
	}
	return favorite.reorder(i, j)
}

// NewPlaylist creates a playlist owned by the logged-in user
func (s *Session) NewPlaylist(ctx context.Context, name, desc string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.newPlaylist(ctx, name, desc)
}

// RemovePlaylistAt removes the playlist at index of the cached list.
// The index is trusted with no staleness check.
func (s *Session) RemovePlaylistAt(ctx context.Context, index int) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.removePlaylistAt(ctx, index)
}

// RemovePlaylist removes a playlist by id and fully refetches the cache
func (s *Session) RemovePlaylist(ctx context.Context, playlistID string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.removePlaylist(ctx, playlistID)
}

// NewFriend adds a friend by id and appends their fetched profile to the cache
func (s *Session) NewFriend(ctx context.Context, friendID string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.newFriend(ctx, friendID)
}

// RemoveFriendAt removes the friend at index of the cached list.
// The index is trusted with no staleness check.
func (s *Session) RemoveFriendAt(ctx context.Context, index int) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.removeFriendAt(ctx, index)
}

// RemoveFriend removes a friend by id and fully refetches the friends cache
func (s *Session) RemoveFriend(ctx context.Context, friendID string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.removeFriend(ctx, friendID)
}

// EditInfo updates the logged-in user's basic fields. Empty arguments keep
// their current values.
func (s *Session) EditInfo(ctx context.Context, username, name, bio string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.editInfo(ctx, username, name, bio)
}

// EditCredentials updates the logged-in user's mail and password
func (s *Session) EditCredentials(ctx context.Context, mail, pass string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.editCredentials(ctx, mail, pass)
}

// EditPlaylistInfo edits the metadata of an owned, cached playlist
func (s *Session) EditPlaylistInfo(ctx context.Context, playlistID, name, description string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return u.editPlaylistInfo(ctx, playlistID, name, description)
}
