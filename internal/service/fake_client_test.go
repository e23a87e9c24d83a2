package service

import (
	"context"

	"chorus/internal/domain"
)

// fakeClient is a canned-response domain.CatalogClient for service tests.
// Each operation counts its calls and returns the configured error first.
type fakeClient struct {
	calls map[string]int
	errs  map[string]error

	account   domain.AccountRecord
	profiles  []domain.ProfileRecord
	songs     []domain.SongRecord
	albums    []domain.AlbumRecord
	authors   []domain.AuthorRecord
	playlists []domain.PlaylistRecord

	playlist domain.PlaylistRecord
	album    domain.AlbumRecord
	song     domain.SongRecord
	author   domain.AuthorRecord
	profile  domain.ProfileRecord
}

var _ domain.CatalogClient = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(map[string]int), errs: make(map[string]error)}
}

func (f *fakeClient) record(op string) error {
	f.calls[op]++
	return f.errs[op]
}

func (f *fakeClient) totalCalls() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) Login(ctx context.Context, mail, pass string) (domain.AccountRecord, error) {
	if err := f.record("login"); err != nil {
		return domain.AccountRecord{}, err
	}
	return f.account, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	return f.record("logout")
}

func (f *fakeClient) Signup(ctx context.Context, mail, name, username, pass string) error {
	return f.record("signup")
}

func (f *fakeClient) SearchProfiles(ctx context.Context, name, username string, skip, limit int) ([]domain.ProfileRecord, error) {
	if err := f.record("searchProfiles"); err != nil {
		return nil, err
	}
	return f.profiles, nil
}

func (f *fakeClient) SearchSongs(ctx context.Context, name, author, genre string, skip, limit int) ([]domain.SongRecord, error) {
	if err := f.record("searchSongs"); err != nil {
		return nil, err
	}
	return f.songs, nil
}

func (f *fakeClient) SearchAlbums(ctx context.Context, name, author string, skip, limit int) ([]domain.AlbumRecord, error) {
	if err := f.record("searchAlbums"); err != nil {
		return nil, err
	}
	return f.albums, nil
}

func (f *fakeClient) SearchAuthors(ctx context.Context, name string, skip, limit int) ([]domain.AuthorRecord, error) {
	if err := f.record("searchAuthors"); err != nil {
		return nil, err
	}
	return f.authors, nil
}

func (f *fakeClient) SearchPlaylists(ctx context.Context, ownerUsername string) ([]domain.PlaylistRecord, error) {
	if err := f.record("searchPlaylists"); err != nil {
		return nil, err
	}
	return f.playlists, nil
}

func (f *fakeClient) GetPlaylist(ctx context.Context, id string) (domain.PlaylistRecord, error) {
	if err := f.record("getPlaylist"); err != nil {
		return domain.PlaylistRecord{}, err
	}
	return f.playlist, nil
}

func (f *fakeClient) GetAlbum(ctx context.Context, id string) (domain.AlbumRecord, error) {
	if err := f.record("getAlbum"); err != nil {
		return domain.AlbumRecord{}, err
	}
	return f.album, nil
}

func (f *fakeClient) GetSong(ctx context.Context, id string) (domain.SongRecord, error) {
	if err := f.record("getSong"); err != nil {
		return domain.SongRecord{}, err
	}
	return f.song, nil
}

func (f *fakeClient) GetAuthor(ctx context.Context, id string) (domain.AuthorRecord, error) {
	if err := f.record("getAuthor"); err != nil {
		return domain.AuthorRecord{}, err
	}
	return f.author, nil
}

func (f *fakeClient) GetUser(ctx context.Context, id string) (domain.ProfileRecord, error) {
	if err := f.record("getUser"); err != nil {
		return domain.ProfileRecord{}, err
	}
	return f.profile, nil
}

func (f *fakeClient) GetProfile(ctx context.Context, id string) (domain.ProfileRecord, error) {
	if err := f.record("getProfile"); err != nil {
		return domain.ProfileRecord{}, err
	}
	return f.profile, nil
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
