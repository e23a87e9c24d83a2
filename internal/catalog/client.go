// Package catalog implements domain.CatalogClient over the remote service's
// HTTP API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"chorus/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Chorus/1.0"
)

// Client talks to the catalog-and-social service. The session token captured
// at login is attached to every subsequent request.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.CatalogClient = (*Client)(nil)

// NewClient creates a new catalog API client
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated HTTP request and returns the response
// body. Non-2xx statuses are mapped onto the domain error taxonomy.
func (c *Client) doRequest(ctx context.Context, op, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("catalog request", "op", op, "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "op", op, "error", err)
		return nil, &domain.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, domain.ErrValidation
	default:
		c.logger.Error("catalog request error", "op", op, "status", resp.StatusCode, "body", string(data))
		return nil, &domain.RemoteError{Op: op, Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
}

func decode[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to parse response: %w", err)
	}
	return out, nil
}

func pageQuery(skip, limit int) url.Values {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

type loginResponse struct {
	Token   string               `json:"token"`
	Account domain.AccountRecord `json:"account"`
}

// Login authenticates and captures the session token for later requests
func (c *Client) Login(ctx context.Context, mail, pass string) (domain.AccountRecord, error) {
	payload := map[string]string{"mail": mail, "pass": pass}
	data, err := c.doRequest(ctx, "login", http.MethodPost, "/login", nil, payload)
	if err != nil {
		return domain.AccountRecord{}, err
	}
	resp, err := decode[loginResponse](data)
	if err != nil {
		return domain.AccountRecord{}, err
	}
	c.token = resp.Token
	c.logger.Info("logged in", "userID", resp.Account.ID)
	return resp.Account, nil
}

// Logout invalidates the session token server-side and drops it locally
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.doRequest(ctx, "logout", http.MethodPost, "/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, mail, name, username, pass string) error {
	payload := map[string]string{"mail": mail, "name": name, "username": username, "pass": pass}
	_, err := c.doRequest(ctx, "signup", http.MethodPost, "/signup", nil, payload)
	return err
}

func (c *Client) SearchProfiles(ctx context.Context, name, username string, skip, limit int) ([]domain.ProfileRecord, error) {
	q := pageQuery(skip, limit)
	q.Set("name", name)
	q.Set("username", username)
	data, err := c.doRequest(ctx, "searchProfiles", http.MethodGet, "/profiles", q, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.ProfileRecord](data)
}

func (c *Client) SearchSongs(ctx context.Context, name, author, genre string, skip, limit int) ([]domain.SongRecord, error) {
	q := pageQuery(skip, limit)
	q.Set("name", name)
	q.Set("author", author)
	q.Set("genre", genre)
	data, err := c.doRequest(ctx, "searchSongs", http.MethodGet, "/songs", q, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.SongRecord](data)
}

func (c *Client) SearchAlbums(ctx context.Context, name, author string, skip, limit int) ([]domain.AlbumRecord, error) {
	q := pageQuery(skip, limit)
	q.Set("name", name)
	q.Set("author", author)
	data, err := c.doRequest(ctx, "searchAlbums", http.MethodGet, "/albums", q, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.AlbumRecord](data)
}

func (c *Client) SearchAuthors(ctx context.Context, name string, skip, limit int) ([]domain.AuthorRecord, error) {
	q := pageQuery(skip, limit)
	q.Set("name", name)
	data, err := c.doRequest(ctx, "searchAuthors", http.MethodGet, "/authors", q, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.AuthorRecord](data)
}

func (c *Client) SearchPlaylists(ctx context.Context, ownerUsername string) ([]domain.PlaylistRecord, error) {
	q := url.Values{}
	q.Set("owner", ownerUsername)
	data, err := c.doRequest(ctx, "searchPlaylists", http.MethodGet, "/playlists", q, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]domain.PlaylistRecord](data)
}

func (c *Client) GetPlaylist(ctx context.Context, id string) (domain.PlaylistRecord, error) {
	data, err := c.doRequest(ctx, "getPlaylist", http.MethodGet, "/playlists/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.PlaylistRecord{}, err
	}
	return decode[domain.PlaylistRecord](data)
}

func (c *Client) GetAlbum(ctx context.Context, id string) (domain.AlbumRecord, error) {
	data, err := c.doRequest(ctx, "getAlbum", http.MethodGet, "/albums/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.AlbumRecord{}, err
	}
	return decode[domain.AlbumRecord](data)
}

func (c *Client) GetSong(ctx context.Context, id string) (domain.SongRecord, error) {
	data, err := c.doRequest(ctx, "getSong", http.MethodGet, "/songs/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.SongRecord{}, err
	}
	return decode[domain.SongRecord](data)
}

func (c *Client) GetAuthor(ctx context.Context, id string) (domain.AuthorRecord, error) {
	data, err := c.doRequest(ctx, "getAuthor", http.MethodGet, "/authors/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.AuthorRecord{}, err
	}
	return decode[domain.AuthorRecord](data)
}

func (c *Client) GetUser(ctx context.Context, id string) (domain.ProfileRecord, error) {
	data, err := c.doRequest(ctx, "getUser", http.MethodGet, "/users/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.ProfileRecord{}, err
	}
	return decode[domain.ProfileRecord](data)
}

func (c *Client) GetProfile(ctx context.Context, id string) (domain.ProfileRecord, error) {
	data, err := c.doRequest(ctx, "getProfile", http.MethodGet, "/profiles/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.ProfileRecord{}, err
	}
	return decode[domain.ProfileRecord](data)
}

func (c *Client) NewPlaylist(ctx context.Context, name, desc string) error {
	payload := map[string]string{"name": name, "description": desc}
	_, err := c.doRequest(ctx, "newPlaylist", http.MethodPost, "/playlists", nil, payload)
	return err
}

func (c *Client) RemovePlaylist(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, "removePlaylist", http.MethodDelete, "/playlists/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) EditPlaylist(ctx context.Context, id, name, desc string) error {
	payload := map[string]string{}
	if name != "" {
		payload["name"] = name
	}
	if desc != "" {
		payload["description"] = desc
	}
	_, err := c.doRequest(ctx, "editPlaylist", http.MethodPatch, "/playlists/"+url.PathEscape(id), nil, payload)
	return err
}

func (c *Client) AddSong(ctx context.Context, playlistID, songID string) error {
	path := fmt.Sprintf("/playlists/%s/songs/%s", url.PathEscape(playlistID), url.PathEscape(songID))
	_, err := c.doRequest(ctx, "addSong", http.MethodPost, path, nil, nil)
	return err
}

func (c *Client) RemoveSong(ctx context.Context, playlistID, songID string) error {
	path := fmt.Sprintf("/playlists/%s/songs/%s", url.PathEscape(playlistID), url.PathEscape(songID))
	_, err := c.doRequest(ctx, "removeSong", http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) NewFriend(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, "newFriend", http.MethodPost, "/friends/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) RemoveFriend(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, "removeFriend", http.MethodDelete, "/friends/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) EditUserInfo(ctx context.Context, username, name, bio string) error {
	payload := map[string]string{"username": username, "name": name, "bio": bio}
	_, err := c.doRequest(ctx, "editUserInfo", http.MethodPatch, "/account", nil, payload)
	return err
}

func (c *Client) EditUserCredentials(ctx context.Context, mail, pass string) error {
	payload := map[string]string{"mail": mail, "pass": pass}
	_, err := c.doRequest(ctx, "editUserCredentials", http.MethodPatch, "/account/credentials", nil, payload)
	return err
}
