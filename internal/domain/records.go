package domain

// Raw record shapes returned by the remote catalog service. These are the
// wire-level inputs to the converters in convert.go; nothing outside the
// catalog client and the converters should touch them. Optional fields may
// be absent and unmarshal to their zero values.

// SongRecord is the service representation of a song
type SongRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	AuthorID string `json:"authorId"`
	AlbumID  string `json:"albumId"`
	Seconds  int    `json:"seconds"`
	ImageURL string `json:"imageUrl"`
}

// AuthorRecord is the service representation of an author
type AuthorRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Bio      string `json:"bio,omitempty"`
}

// AlbumRecord is the service representation of an album, including its
// track listing
type AlbumRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	AuthorID    string       `json:"authorId"`
	AuthorName  string       `json:"authorName"`
	Description string       `json:"description,omitempty"`
	PublishDate string       `json:"publishDate"` // RFC 3339 date, e.g. "2019-04-12"
	ImageURL    string       `json:"imageUrl"`
	Songs       []SongRecord `json:"songs"`
}

// PlaylistRecord is the service representation of a playlist, including its
// current song list
type PlaylistRecord struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	OwnerID      string       `json:"ownerId"`
	CreationDate string       `json:"creationDate"` // RFC 3339 date
	Songs        []SongRecord `json:"songs"`
}

// FriendRecord is the summary shape a user's friends are embedded as.
// It carries no friend or playlist lists of its own.
type FriendRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
}

// ProfileRecord is the public profile shape, embedding the profile's
// friends and playlists
type ProfileRecord struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Bio       string           `json:"bio,omitempty"`
	Friends   []FriendRecord   `json:"friends"`
	Playlists []PlaylistRecord `json:"playlists"`
}

// AccountRecord is the authenticated account shape returned by login,
// embedding the account's friends and playlists
type AccountRecord struct {
	ID        string           `json:"id"`
	Mail      string           `json:"mail"`
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Bio       string           `json:"bio,omitempty"`
	Friends   []FriendRecord   `json:"friends"`
	Playlists []PlaylistRecord `json:"playlists"`
}
