package domain

import (
	"fmt"
	"time"
)

// Kind distinguishes catalog entity types
type Kind int

const (
	KindPlaylist Kind = iota
	KindAlbum
	KindSong
	KindAuthor
	KindUser
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlaylist:
		return "playlist"
	case KindAlbum:
		return "album"
	case KindSong:
		return "song"
	case KindAuthor:
		return "author"
	case KindUser:
		return "user"
	default:
		return "unknown"
	}
}

// Entity is implemented by every catalog object with a server-assigned identity.
// Identity is the id alone; two copies of the same remote entity compare equal
// through SameEntity regardless of any other field differences.
type Entity interface {
	// EntityID returns the server-assigned identifier
	EntityID() string

	// EntityKind returns the entity type
	EntityKind() Kind
}

// SameEntity reports whether a and b represent the same remote entity:
// same kind and same id. Entities of different kinds are never the same.
// This predicate is the single equality rule for de-duplication and cache
// lookups; structural comparison of entities is never used.
func SameEntity(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return a.EntityKind() == b.EntityKind() && a.EntityID() == b.EntityID()
}

// Song is an immutable snapshot of a catalog song
type Song struct {
	ID       string        // Server-assigned unique identifier
	Title    string        // Display title
	AuthorID string        // Author reference
	AlbumID  string        // Album reference
	Duration time.Duration // Total runtime
	ImageURL string        // Cover image URL
}

func (s Song) EntityID() string { return s.ID }
func (s Song) EntityKind() Kind { return KindSong }

// FormattedDuration returns the duration in m:ss form
func (s Song) FormattedDuration() string {
	mins := int(s.Duration.Minutes())
	secs := int(s.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Author is an immutable snapshot of a catalog author
type Author struct {
	ID       string // Server-assigned unique identifier
	Name     string // Display name
	ImageURL string // Portrait image URL
	Bio      string // Short biography (may be empty)
}

func (a Author) EntityID() string { return a.ID }
func (a Author) EntityKind() Kind { return KindAuthor }

// Album is an immutable snapshot of a catalog album. The song list is the
// track listing at fetch time, not a live view.
type Album struct {
	ID          string    // Server-assigned unique identifier
	Name        string    // Display name
	AuthorID    string    // Author reference
	AuthorName  string    // Author display name (denormalized by the service)
	Description string    // Album description (may be empty)
	PublishedAt time.Time // Publish date
	ImageURL    string    // Cover image URL
	Songs       []Song    // Track listing snapshot
}

func (a Album) EntityID() string { return a.ID }
func (a Album) EntityKind() Kind { return KindAlbum }
