package domain

import (
	"time"
)

// Converters from remote records to domain entities. All list converters
// preserve the order of the input. Records missing their id, or carrying an
// unparseable date, fail with *ConversionError; absent optional fields map
// to zero values.

const recordDateLayout = "2006-01-02"

// SongFromRecord maps a song record to a Song
func SongFromRecord(rec SongRecord) (Song, error) {
	if rec.ID == "" {
		return Song{}, &ConversionError{Kind: KindSong, Reason: "missing id"}
	}
	return Song{
		ID:       rec.ID,
		Title:    rec.Title,
		AuthorID: rec.AuthorID,
		AlbumID:  rec.AlbumID,
		Duration: time.Duration(rec.Seconds) * time.Second,
		ImageURL: rec.ImageURL,
	}, nil
}

// SongsFromRecords maps a song record list to a Song list, preserving order
func SongsFromRecords(recs []SongRecord) ([]Song, error) {
	songs := make([]Song, 0, len(recs))
	for _, rec := range recs {
		song, err := SongFromRecord(rec)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

// AuthorFromRecord maps an author record to an Author
func AuthorFromRecord(rec AuthorRecord) (Author, error) {
	if rec.ID == "" {
		return Author{}, &ConversionError{Kind: KindAuthor, Reason: "missing id"}
	}
	return Author{
		ID:       rec.ID,
		Name:     rec.Name,
		ImageURL: rec.ImageURL,
		Bio:      rec.Bio,
	}, nil
}

// AuthorsFromRecords maps an author record list to an Author list, preserving order
func AuthorsFromRecords(recs []AuthorRecord) ([]Author, error) {
	authors := make([]Author, 0, len(recs))
	for _, rec := range recs {
		author, err := AuthorFromRecord(rec)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// AlbumFromRecord maps an album record, including its track listing, to an Album
func AlbumFromRecord(rec AlbumRecord) (Album, error) {
	if rec.ID == "" {
		return Album{}, &ConversionError{Kind: KindAlbum, Reason: "missing id"}
	}
	published, err := parseRecordDate(rec.PublishDate, KindAlbum)
	if err != nil {
		return Album{}, err
	}
	songs, err := SongsFromRecords(rec.Songs)
	if err != nil {
		return Album{}, err
	}
	return Album{
		ID:          rec.ID,
		Name:        rec.Name,
		AuthorID:    rec.AuthorID,
		AuthorName:  rec.AuthorName,
		Description: rec.Description,
		PublishedAt: published,
		ImageURL:    rec.ImageURL,
		Songs:       songs,
	}, nil
}

// AlbumsFromRecords maps an album record list to an Album list, preserving order
func AlbumsFromRecords(recs []AlbumRecord) ([]Album, error) {
	albums := make([]Album, 0, len(recs))
	for _, rec := range recs {
		album, err := AlbumFromRecord(rec)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, nil
}

// parseRecordDate parses a service date field. An absent date maps to the
// zero time; a present but unparseable one is a conversion failure.
func parseRecordDate(value string, kind Kind) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(recordDateLayout, value)
	if err != nil {
		return time.Time{}, &ConversionError{Kind: kind, Reason: "bad date " + value}
	}
	return t, nil
}
