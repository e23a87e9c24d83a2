package domain

import (
	"context"
	"sync"
	"time"
)

// Playlist is a mutable cached entity owning its song sequence. ImageURL and
// SongAmount are derived from the sequence and recomputed on every change.
//
// All mutations are write-through: the server call happens first and the
// local sequence is only touched after it succeeds, so a failed remote call
// never desyncs local state. The mutex is held across the remote call; the
// model assumes a single logical caller per session and the lock only
// serializes accidental concurrent use.
type Playlist struct {
	mu sync.Mutex

	id          string
	name        string
	description string
	createdAt   time.Time
	imageURL    string
	ownerID     string
	songs       []Song

	client CatalogClient
}

// PlaylistFromRecord maps a playlist record to a Playlist bound to the given
// catalog client. Derived fields are computed from the embedded song list.
func PlaylistFromRecord(rec PlaylistRecord, client CatalogClient) (*Playlist, error) {
	if rec.ID == "" {
		return nil, &ConversionError{Kind: KindPlaylist, Reason: "missing id"}
	}
	created, err := parseRecordDate(rec.CreationDate, KindPlaylist)
	if err != nil {
		return nil, err
	}
	songs, err := SongsFromRecords(rec.Songs)
	if err != nil {
		return nil, err
	}
	p := &Playlist{
		id:          rec.ID,
		name:        rec.Name,
		description: rec.Description,
		createdAt:   created,
		ownerID:     rec.OwnerID,
		songs:       songs,
		client:      client,
	}
	p.recomputeDerived()
	return p, nil
}

// PlaylistsFromRecords maps a playlist record list, preserving order
func PlaylistsFromRecords(recs []PlaylistRecord, client CatalogClient) ([]*Playlist, error) {
	playlists := make([]*Playlist, 0, len(recs))
	for _, rec := range recs {
		p, err := PlaylistFromRecord(rec, client)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

func (p *Playlist) EntityID() string { return p.id }
func (p *Playlist) EntityKind() Kind { return KindPlaylist }

func (p *Playlist) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

func (p *Playlist) Description() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.description
}

func (p *Playlist) CreatedAt() time.Time { return p.createdAt }

// ImageURL returns the derived cover: the first song's image, or empty when
// the playlist has no songs
func (p *Playlist) ImageURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.imageURL
}

// SongAmount returns the current length of the song sequence
func (p *Playlist) SongAmount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.songs)
}

// Songs returns a read-only snapshot of the song sequence
func (p *Playlist) Songs() []Song {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Song, len(p.songs))
	copy(out, p.songs)
	return out
}

// Owner returns the user that owns this playlist. When the session's
// logged-in user is the owner it is returned directly, avoiding a network
// round trip; otherwise the owner's public profile is fetched. The result
// is not cached.
func (p *Playlist) Owner(ctx context.Context, sess *Session) (*User, error) {
	if sess != nil {
		if current := sess.CurrentUser(); current != nil && current.ID() == p.ownerID {
			return current, nil
		}
	}
	rec, err := p.client.GetUser(ctx, p.ownerID)
	if err != nil {
		return nil, err
	}
	return UserFromProfile(rec, p.client)
}

// Authors returns the distinct authors of the songs currently in the
// playlist, one fetch per distinct referenced author id. Results are not
// cached across calls.
func (p *Playlist) Authors(ctx context.Context) ([]Author, error) {
	ids := p.distinctRefs(func(s Song) string { return s.AuthorID })
	authors := make([]Author, 0, len(ids))
	for _, id := range ids {
		rec, err := p.client.GetAuthor(ctx, id)
		if err != nil {
			return nil, err
		}
		author, err := AuthorFromRecord(rec)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// Albums returns the distinct albums of the songs currently in the playlist,
// one fetch per distinct referenced album id. Results are not cached across
// calls.
func (p *Playlist) Albums(ctx context.Context) ([]Album, error) {
	ids := p.distinctRefs(func(s Song) string { return s.AlbumID })
	albums := make([]Album, 0, len(ids))
	for _, id := range ids {
		rec, err := p.client.GetAlbum(ctx, id)
		if err != nil {
			return nil, err
		}
		album, err := AlbumFromRecord(rec)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, nil
}

// distinctRefs collects the referenced ids in first-seen order, skipping
// duplicates and empty references
func (p *Playlist) distinctRefs(ref func(Song) string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	seen := make(map[string]bool, len(p.songs))
	var ids []string
	for _, song := range p.songs {
		id := ref(song)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// addSong appends a song server-side, then locally. Reachable only through
// the owning user and session path.
func (p *Playlist) addSong(ctx context.Context, song Song) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.client.AddSong(ctx, p.id, song.ID); err != nil {
		return err
	}
	p.songs = append(p.songs, song)
	p.recomputeDerived()
	return nil
}

// removeSong removes the song at index server-side, then locally. Reachable
// only through the owning user and session path.
func (p *Playlist) removeSong(ctx context.Context, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.songs) {
		return indexError(index, len(p.songs))
	}
	if err := p.client.RemoveSong(ctx, p.id, p.songs[index].ID); err != nil {
		return err
	}
	p.songs = append(p.songs[:index], p.songs[index+1:]...)
	p.recomputeDerived()
	return nil
}

// reorder swaps two positions in the local sequence. Ordering is a
// client-only concern with no server semantics, so no remote call is made.
func (p *Playlist) reorder(i, j int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.songs) {
		return indexError(i, len(p.songs))
	}
	if j < 0 || j >= len(p.songs) {
		return indexError(j, len(p.songs))
	}
	p.songs[i], p.songs[j] = p.songs[j], p.songs[i]
	p.recomputeDerived()
	return nil
}

// editInfo updates name and/or description server-side, then locally.
// Empty fields are left unchanged.
func (p *Playlist) editInfo(ctx context.Context, name, description string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.client.EditPlaylist(ctx, p.id, name, description); err != nil {
		return err
	}
	if name != "" {
		p.name = name
	}
	if description != "" {
		p.description = description
	}
	return nil
}

// removeThis deletes the playlist server-side. The caller owns removing it
// from any parent user cache.
func (p *Playlist) removeThis(ctx context.Context) error {
	return p.client.RemovePlaylist(ctx, p.id)
}

// recomputeDerived re-derives imageURL from the song sequence. Callers hold
// the mutex.
func (p *Playlist) recomputeDerived() {
	if len(p.songs) == 0 {
		p.imageURL = ""
		return
	}
	p.imageURL = p.songs[0].ImageURL
}
