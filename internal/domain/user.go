package domain

import (
	"context"
	"sync"
)

// userSource tags which record shape a User was constructed from. The tag
// decides whether the friend and playlist caches can be populated from the
// embedded record or need a follow-up profile fetch.
type userSource int

const (
	fromAccount userSource = iota
	fromFriendSummary
	fromProfile
)

// User is a mutable cached entity. Its friends and playlists are two
// independently lazily-populated caches, exclusively owned by this instance:
// the same person appearing in two users' friend lists is two independent
// copies.
//
// Owner-gated mutations are unexported and reachable only through the
// Session, which is the sole authorization gate.
type User struct {
	mu sync.Mutex

	id       string
	username string
	name     string
	bio      string

	source  userSource
	account *AccountRecord // set when constructed from the authenticated account
	profile *ProfileRecord // set when constructed from a profile, or after a lazy fetch

	friends       []*User
	friendsLoaded bool

	playlists       []*Playlist
	playlistsLoaded bool

	client CatalogClient
}

// UserFromAccount constructs a User from the authenticated account record
// returned by login. Both caches can be populated from the embedded lists.
func UserFromAccount(rec AccountRecord, client CatalogClient) (*User, error) {
	if rec.ID == "" {
		return nil, &ConversionError{Kind: KindUser, Reason: "missing id"}
	}
	return &User{
		id:       rec.ID,
		username: rec.Username,
		name:     rec.Name,
		bio:      rec.Bio,
		source:   fromAccount,
		account:  &rec,
		client:   client,
	}, nil
}

// UserFromFriend constructs a User from a friend-summary record. The summary
// embeds no lists, so both caches require a follow-up profile fetch.
func UserFromFriend(rec FriendRecord, client CatalogClient) (*User, error) {
	if rec.ID == "" {
		return nil, &ConversionError{Kind: KindUser, Reason: "missing id"}
	}
	return &User{
		id:       rec.ID,
		username: rec.Username,
		name:     rec.Name,
		bio:      rec.Bio,
		source:   fromFriendSummary,
		client:   client,
	}, nil
}

// UserFromProfile constructs a User from a public-profile record. Both
// caches can be populated from the embedded lists.
func UserFromProfile(rec ProfileRecord, client CatalogClient) (*User, error) {
	if rec.ID == "" {
		return nil, &ConversionError{Kind: KindUser, Reason: "missing id"}
	}
	return &User{
		id:       rec.ID,
		username: rec.Username,
		name:     rec.Name,
		bio:      rec.Bio,
		source:   fromProfile,
		profile:  &rec,
		client:   client,
	}, nil
}

// UsersFromProfiles maps a profile record list, preserving order
func UsersFromProfiles(recs []ProfileRecord, client CatalogClient) ([]*User, error) {
	users := make([]*User, 0, len(recs))
	for _, rec := range recs {
		u, err := UserFromProfile(rec, client)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// UsersFromFriends maps a friend-summary record list, preserving order
func UsersFromFriends(recs []FriendRecord, client CatalogClient) ([]*User, error) {
	users := make([]*User, 0, len(recs))
	for _, rec := range recs {
		u, err := UserFromFriend(rec, client)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (u *User) EntityID() string { return u.id }
func (u *User) EntityKind() Kind { return KindUser }

func (u *User) ID() string { return u.id }

func (u *User) Username() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.username
}

func (u *User) Name() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.name
}

func (u *User) Bio() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.bio
}

// Info returns the user's basic profile fields in one call
func (u *User) Info() (id, username, name, bio string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.id, u.username, u.name, u.bio
}

// Friends returns the user's friends, populating the cache on first use:
// from the constructing record when it embeds a friends list, otherwise via
// one profile fetch. Subsequent calls return the cached list until it is
// invalidated. The returned slice is a read-only view.
func (u *User) Friends(ctx context.Context) ([]*User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.friendsLoaded {
		recs, err := u.embeddedFriends(ctx)
		if err != nil {
			return nil, err
		}
		friends, err := UsersFromFriends(recs, u.client)
		if err != nil {
			return nil, err
		}
		u.friends = friends
		u.friendsLoaded = true
	}
	return copyUsers(u.friends), nil
}

// Playlists returns the user's playlists, populating the cache on first use
// with the same embedded-record-or-fetch rule as Friends. The two caches
// load independently.
func (u *User) Playlists(ctx context.Context) ([]*Playlist, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.playlistsLoaded {
		recs, err := u.embeddedPlaylists(ctx)
		if err != nil {
			return nil, err
		}
		playlists, err := PlaylistsFromRecords(recs, u.client)
		if err != nil {
			return nil, err
		}
		u.playlists = playlists
		u.playlistsLoaded = true
	}
	return copyPlaylists(u.playlists), nil
}

// embeddedFriends resolves the friend records for cache population, fetching
// the profile once when the constructing record embeds nothing. Callers hold
// the mutex.
func (u *User) embeddedFriends(ctx context.Context) ([]FriendRecord, error) {
	switch {
	case u.account != nil:
		return u.account.Friends, nil
	case u.profile != nil:
		return u.profile.Friends, nil
	default:
		rec, err := u.client.GetProfile(ctx, u.id)
		if err != nil {
			return nil, err
		}
		u.profile = &rec
		return rec.Friends, nil
	}
}

func (u *User) embeddedPlaylists(ctx context.Context) ([]PlaylistRecord, error) {
	switch {
	case u.account != nil:
		return u.account.Playlists, nil
	case u.profile != nil:
		return u.profile.Playlists, nil
	default:
		rec, err := u.client.GetProfile(ctx, u.id)
		if err != nil {
			return nil, err
		}
		u.profile = &rec
		return rec.Playlists, nil
	}
}

// refreshPlaylists repopulates the playlist cache from the server. Callers
// hold the mutex.
func (u *User) refreshPlaylists(ctx context.Context) error {
	recs, err := u.client.SearchPlaylists(ctx, u.username)
	if err != nil {
		return err
	}
	playlists, err := PlaylistsFromRecords(recs, u.client)
	if err != nil {
		return err
	}
	u.playlists = playlists
	u.playlistsLoaded = true
	return nil
}

// refreshFriends repopulates the friends cache from the server. Callers hold
// the mutex.
func (u *User) refreshFriends(ctx context.Context) error {
	rec, err := u.client.GetUser(ctx, u.id)
	if err != nil {
		return err
	}
	friends, err := UsersFromFriends(rec.Friends, u.client)
	if err != nil {
		return err
	}
	u.friends = friends
	u.friendsLoaded = true
	return nil
}

// newPlaylist creates a playlist server-side, then fully refetches the
// playlist cache: the server assigns the new playlist's id and ordering is
// server-defined, so an incremental append cannot be correct.
func (u *User) newPlaylist(ctx context.Context, name, desc string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.client.NewPlaylist(ctx, name, desc); err != nil {
		return err
	}
	return u.refreshPlaylists(ctx)
}

// removePlaylistAt removes the playlist at index of the cached list, server
// first. The index is trusted as-is: if the cache was reordered or refetched
// since it was obtained, the wrong playlist is removed with no detection.
func (u *User) removePlaylistAt(ctx context.Context, index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if index < 0 || index >= len(u.playlists) {
		return indexError(index, len(u.playlists))
	}
	if err := u.playlists[index].removeThis(ctx); err != nil {
		return err
	}
	u.playlists = append(u.playlists[:index], u.playlists[index+1:]...)
	return nil
}

// removePlaylist removes a playlist by id server-side, then fully refetches
// the cache. Safe alternative to removePlaylistAt.
func (u *User) removePlaylist(ctx context.Context, playlistID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.client.RemovePlaylist(ctx, playlistID); err != nil {
		return err
	}
	return u.refreshPlaylists(ctx)
}

// newFriend adds a friend server-side, fetches that friend's profile once
// and appends it to the cache. No full refetch.
func (u *User) newFriend(ctx context.Context, friendID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.client.NewFriend(ctx, friendID); err != nil {
		return err
	}
	rec, err := u.client.GetProfile(ctx, friendID)
	if err != nil {
		return err
	}
	friend, err := UserFromProfile(rec, u.client)
	if err != nil {
		return err
	}
	u.friends = append(u.friends, friend)
	return nil
}

// removeFriendAt removes the friend at index of the cached list, server
// first. Same trusted-index contract as removePlaylistAt.
func (u *User) removeFriendAt(ctx context.Context, index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if index < 0 || index >= len(u.friends) {
		return indexError(index, len(u.friends))
	}
	if err := u.client.RemoveFriend(ctx, u.friends[index].id); err != nil {
		return err
	}
	u.friends = append(u.friends[:index], u.friends[index+1:]...)
	return nil
}

// removeFriend removes a friend by id server-side, then fully refetches the
// friends cache.
func (u *User) removeFriend(ctx context.Context, friendID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.client.RemoveFriend(ctx, friendID); err != nil {
		return err
	}
	return u.refreshFriends(ctx)
}

// editInfo updates the user's basic fields server-side, then locally.
// Empty arguments keep the current value; the server always receives the
// full effective triple.
func (u *User) editInfo(ctx context.Context, username, name, bio string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if username == "" {
		username = u.username
	}
	if name == "" {
		name = u.name
	}
	if bio == "" {
		bio = u.bio
	}
	if err := u.client.EditUserInfo(ctx, username, name, bio); err != nil {
		return err
	}
	u.username = username
	u.name = name
	u.bio = bio
	return nil
}

// editCredentials updates mail and password server-side. No local state is
// affected.
func (u *User) editCredentials(ctx context.Context, mail, pass string) error {
	return u.client.EditUserCredentials(ctx, mail, pass)
}

// editPlaylistInfo locates the playlist by id in the cached list and
// delegates to its metadata edit with the non-empty fields. The cache is not
// lazily populated here: an uncached or unowned playlist is not found.
func (u *User) editPlaylistInfo(ctx context.Context, playlistID, name, description string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.playlists {
		if p.id == playlistID {
			if name == "" && description == "" {
				return ErrNoChanges
			}
			return p.editInfo(ctx, name, description)
		}
	}
	return ErrNotFound
}

func copyUsers(users []*User) []*User {
	out := make([]*User, len(users))
	copy(out, users)
	return out
}

func copyPlaylists(playlists []*Playlist) []*Playlist {
	out := make([]*Playlist, len(playlists))
	copy(out, playlists)
	return out
}
