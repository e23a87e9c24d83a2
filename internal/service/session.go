package service

import (
	"context"
	"log/slog"

	"chorus/internal/domain"
)

// SessionService owns the login lifecycle: it authenticates against the
// catalog client and installs the resulting user into the session.
type SessionService struct {
	client  domain.CatalogClient
	session *domain.Session
	logger  *slog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(client domain.CatalogClient, session *domain.Session, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{client: client, session: session, logger: logger}
}

// Session returns the session this service drives
func (s *SessionService) Session() *domain.Session {
	return s.session
}

// Login authenticates and returns the logged-in user. Fails with
// ErrAlreadyLoggedIn, before any remote call, if a user is already set.
func (s *SessionService) Login(ctx context.Context, mail, pass string) (*domain.User, error) {
	if s.session.IsLoggedIn() {
		return nil, domain.ErrAlreadyLoggedIn
	}
	rec, err := s.client.Login(ctx, mail, pass)
	if err != nil {
		s.logger.Error("login failed", "error", err)
		return nil, err
	}
	user, err := s.session.OnLogin(rec, s.client)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", "userID", user.ID())
	return user, nil
}

// Logout invalidates the remote session, then clears the local one
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Error("logout failed", "error", err)
		return err
	}
	s.session.OnLogout()
	s.logger.Info("user logged out")
	return nil
}

// Signup registers a new account. No session state is affected; the caller
// logs in separately.
func (s *SessionService) Signup(ctx context.Context, mail, name, username, pass string) error {
	if err := s.client.Signup(ctx, mail, name, username, pass); err != nil {
		s.logger.Error("signup failed", "error", err)
		return err
	}
	s.logger.Info("account created", "username", username)
	return nil
}
