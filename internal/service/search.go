package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"chorus/internal/domain"
)

// SearchService is the stateless facade over the catalog's search and
// fetch-by-id operations. Search results are converted snapshots, never
// cached; skip and limit pass through to the service.
type SearchService struct {
	client domain.CatalogClient
	logger *slog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(client domain.CatalogClient, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{client: client, logger: logger}
}

// clampPage applies the facade paging defaults
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = 1
	}
	return skip, limit
}

// SearchUsers returns users whose profile matches the filters
func (s *SearchService) SearchUsers(ctx context.Context, name, username string, skip, limit int) ([]*domain.User, error) {
	skip, limit = clampPage(skip, limit)
	recs, err := s.client.SearchProfiles(ctx, name, username, skip, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("searched users", "name", name, "username", username, "results", len(recs))
	return domain.UsersFromProfiles(recs, s.client)
}

// SearchSongs returns songs matching the filters
func (s *SearchService) SearchSongs(ctx context.Context, name, author, genre string, skip, limit int) ([]domain.Song, error) {
	skip, limit = clampPage(skip, limit)
	recs, err := s.client.SearchSongs(ctx, name, author, genre, skip, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("searched songs", "name", name, "results", len(recs))
	return domain.SongsFromRecords(recs)
}

// SearchAlbums returns albums matching the filters
func (s *SearchService) SearchAlbums(ctx context.Context, name, author string, skip, limit int) ([]domain.Album, error) {
	skip, limit = clampPage(skip, limit)
	recs, err := s.client.SearchAlbums(ctx, name, author, skip, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("searched albums", "name", name, "results", len(recs))
	return domain.AlbumsFromRecords(recs)
}

// SearchAuthors returns authors matching the filters
func (s *SearchService) SearchAuthors(ctx context.Context, name string, skip, limit int) ([]domain.Author, error) {
	skip, limit = clampPage(skip, limit)
	recs, err := s.client.SearchAuthors(ctx, name, skip, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("searched authors", "name", name, "results", len(recs))
	return domain.AuthorsFromRecords(recs)
}

// FetchByID downloads and converts one entity of the given kind. Fails with
// ErrInvalidKind on an unrecognized kind, before any remote call.
func (s *SearchService) FetchByID(ctx context.Context, kind domain.Kind, id string) (domain.Entity, error) {
	switch kind {
	case domain.KindPlaylist:
		rec, err := s.client.GetPlaylist(ctx, id)
		if err != nil {
			return nil, err
		}
		return domain.PlaylistFromRecord(rec, s.client)
	case domain.KindAlbum:
		rec, err := s.client.GetAlbum(ctx, id)
		if err != nil {
			return nil, err
		}
		return domain.AlbumFromRecord(rec)
	case domain.KindSong:
		rec, err := s.client.GetSong(ctx, id)
		if err != nil {
			return nil, err
		}
		return domain.SongFromRecord(rec)
	case domain.KindAuthor:
		rec, err := s.client.GetAuthor(ctx, id)
		if err != nil {
			return nil, err
		}
		return domain.AuthorFromRecord(rec)
	case domain.KindUser:
		rec, err := s.client.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return domain.UserFromProfile(rec, s.client)
	default:
		return nil, domain.ErrInvalidKind
	}
}

// FilterSongs ranks an already-fetched song list against a query by title.
// Local only; no remote call.
func (s *SearchService) FilterSongs(query string, songs []domain.Song) []domain.Song {
	if query == "" {
		return songs
	}
	titles := make([]string, len(songs))
	byTitle := make(map[string][]domain.Song, len(songs))
	for i, song := range songs {
		title := strings.ToLower(song.Title)
		titles[i] = title
		byTitle[title] = append(byTitle[title], song)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	matched := make([]domain.Song, 0, len(ranks))
	taken := make(map[string]int, len(ranks))
	for _, rank := range ranks {
		candidates := byTitle[rank.Target]
		idx := taken[rank.Target]
		if idx < len(candidates) {
			matched = append(matched, candidates[idx])
			taken[rank.Target] = idx + 1
		}
	}
	return matched
}

// playlistIndex implements sahilm/fuzzy.Source over playlist names
type playlistIndex struct {
	playlists []*domain.Playlist
	names     []string
}

func (idx *playlistIndex) String(i int) string { return idx.names[i] }
func (idx *playlistIndex) Len() int            { return len(idx.playlists) }

// FilterPlaylists ranks a cached playlist list against a query by name.
// Local only; no remote call.
func (s *SearchService) FilterPlaylists(query string, playlists []*domain.Playlist) []*domain.Playlist {
	if query == "" {
		return playlists
	}
	idx := &playlistIndex{playlists: playlists, names: make([]string, len(playlists))}
	for i, p := range playlists {
		idx.names[i] = strings.ToLower(p.Name())
	}

	matches := sahilm.FindFrom(strings.ToLower(query), idx)
	matched := make([]*domain.Playlist, 0, len(matches))
	for _, m := range matches {
		matched = append(matched, playlists[m.Index])
	}
	return matched
}
