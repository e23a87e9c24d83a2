package domain

import (
	"context"
	"sync"
)

// fakeClient is an in-memory CatalogClient with per-operation call counts.
// Setting errs[op] makes that operation fail without touching any fixture.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error

	account        AccountRecord
	songs          map[string]SongRecord
	albums         map[string]AlbumRecord
	authors        map[string]AuthorRecord
	playlists      map[string]PlaylistRecord
	profiles       map[string]ProfileRecord
	users          map[string]ProfileRecord
	ownerPlaylists []PlaylistRecord // SearchPlaylists result
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		calls:     make(map[string]int),
		errs:      make(map[string]error),
		songs:     make(map[string]SongRecord),
		albums:    make(map[string]AlbumRecord),
		authors:   make(map[string]AuthorRecord),
		playlists: make(map[string]PlaylistRecord),
		profiles:  make(map[string]ProfileRecord),
		users:     make(map[string]ProfileRecord),
	}
}

func (f *fakeClient) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.errs[op]
}

func (f *fakeClient) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeClient) Login(ctx context.Context, mail, pass string) (AccountRecord, error) {
	if err := f.record("login"); err != nil {
		return AccountRecord{}, err
	}
	return f.account, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	return f.record("logout")
}

func (f *fakeClient) Signup(ctx context.Context, mail, name, username, pass string) error {
	return f.record("signup")
}

func (f *fakeClient) SearchProfiles(ctx context.Context, name, username string, skip, limit int) ([]ProfileRecord, error) {
	if err := f.record("searchProfiles"); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeClient) SearchSongs(ctx context.Context, name, author, genre string, skip, limit int) ([]SongRecord, error) {
	if err := f.record("searchSongs"); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeClient) SearchAlbums(ctx context.Context, name, author string, skip, limit int) ([]AlbumRecord, error) {
	if err := f.record("searchAlbums"); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeClient) SearchAuthors(ctx context.Context, name string, skip, limit int) ([]AuthorRecord, error) {
	if err := f.record("searchAuthors"); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeClient) SearchPlaylists(ctx context.Context, ownerUsername string) ([]PlaylistRecord, error) {
	if err := f.record("searchPlaylists"); err != nil {
		return nil, err
	}
	return f.ownerPlaylists, nil
}

func (f *fakeClient) GetPlaylist(ctx context.Context, id string) (PlaylistRecord, error) {
	if err := f.record("getPlaylist"); err != nil {
		return PlaylistRecord{}, err
	}
	rec, ok := f.playlists[id]
	if !ok {
		return PlaylistRecord{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeClient) GetAlbum(ctx context.Context, id string) (AlbumRecord, error) {
	if err := f.record("getAlbum"); err != nil {
		return AlbumRecord{}, err
	}
	rec, ok := f.albums[id]
	if !ok {
		return AlbumRecord{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeClient) GetSong(ctx context.Context, id string) (SongRecord, error) {
	if err := f.record("getSong"); err != nil {
		return SongRecord{}, err
	}
	rec, ok := f.songs[id]
	if !ok {
		return SongRecord{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeClient) GetAuthor(ctx context.Context, id string) (AuthorRecord, error) {
	if err := f.record("getAuthor"); err != nil {
		return AuthorRecord{}, err
	}
	rec, ok := f.authors[id]
	if !ok {
		return AuthorRecord{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeClient) GetUser(ctx context.Context, id string) (ProfileRecord, error) {
	if err := f.record("getUser"); err != nil {
		return ProfileRecord{}, err
	}
	rec, ok := f.users[id]
	if !ok {
		return ProfileRecord{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeClient) GetProfile(ctx context.Context, id string) (ProfileRecord, error) {
	if err := f.record("getProfile"); err != nil {
		return ProfileRecord{}, err
	}
	rec, ok := f.profiles[id]
	if !ok {
		return ProfileRecord{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeClient) NewPlaylist(ctx context.Context, name, desc string) error {
	return f.record("newPlaylist")
}

func (f *fakeClient) RemovePlaylist(ctx context.Context, id string) error {
	return f.record("removePlaylist")
}

func (f *fakeClient) EditPlaylist(ctx context.Context, id, name, desc string) error {
	return f.record("editPlaylist")
}

func (f *fakeClient) AddSong(ctx context.Context, playlistID, songID string) error {
	return f.record("addSong")
}

func (f *fakeClient) RemoveSong(ctx context.Context, playlistID, songID string) error {
	return f.record("removeSong")
}

func (f *fakeClient) NewFriend(ctx context.Context, id string) error {
	return f.record("newFriend")
}

func (f *fakeClient) RemoveFriend(ctx context.Context, id string) error {
	return f.record("removeFriend")
}

func (f *fakeClient) EditUserInfo(ctx context.Context, username, name, bio string) error {
	return f.record("editUserInfo")
}

func (f *fakeClient) EditUserCredentials(ctx context.Context, mail, pass string) error {
	return f.record("editUserCredentials")
}
