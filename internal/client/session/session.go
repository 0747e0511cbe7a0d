// Package session holds the authenticated-user state for the client: the
// persisted credential token and the in-memory current user. It is the single
// source of truth for "is a user logged in", constructed once in main and
// passed to every screen that gates functionality.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"joytrade/internal/client/models"
	"joytrade/internal/logging"
)

// ErrTokenExpired marks a stored token whose expiry claim was already past
// at startup. Cleared locally without a server round-trip.
var ErrTokenExpired = errors.New("stored token expired")

// authAPI is the slice of the API client the session layer depends on.
type authAPI interface {
	SetToken(token string)
	ClearToken()
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (string, models.User, error)
	CurrentUser(ctx context.Context) (models.User, error)
}

// Manager owns the session lifecycle: startup validation of a stored token,
// login, register, and logout.
type Manager struct {
	api     authAPI
	store   TokenStore
	log     logging.Logger
	user    *models.User
	initErr error
}

func NewManager(api authAPI, store TokenStore, log logging.Logger) *Manager {
	return &Manager{api: api, store: store, log: log}
}

// Initialize validates a stored token against the server. Any failure leaves
// the session unauthenticated and the token cleared; nothing is surfaced to
// the user on this path, but the failure is logged and kept in InitErr so the
// state is observable.
func (m *Manager) Initialize(ctx context.Context) {
	token, err := m.store.Load()
	if err != nil {
		m.log.Warn(ctx, "token store unreadable", "err", err)
		m.initErr = err
		return
	}
	if token == "" {
		return
	}

	if tokenExpired(token) {
		m.log.Info(ctx, "stored token already expired, clearing")
		_ = m.store.Clear()
		m.initErr = ErrTokenExpired
		return
	}

	m.api.SetToken(token)
	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored token rejected by server", "err", err)
		_ = m.store.Clear()
		m.api.ClearToken()
		m.initErr = err
		return
	}
	m.user = &u
}

// Login authenticates, persists the token, and caches the current user.
// On failure neither the store nor the cached user changes.
func (m *Manager) Login(ctx context.Context, username, password string) (models.User, error) {
	token, err := m.api.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	m.api.SetToken(token)
	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.api.ClearToken()
		return models.User{}, err
	}

	if err := m.store.Save(token); err != nil {
		// The live session still works; it just won't survive a restart.
		m.log.Warn(ctx, "token not persisted", "err", err)
	}
	m.user = &u
	return u, nil
}

// Register creates an account; the service returns the token and user in one
// response, so no follow-up fetch is needed.
func (m *Manager) Register(ctx context.Context, username, email, password string) (models.User, error) {
	token, u, err := m.api.Register(ctx, username, email, password)
	if err != nil {
		return models.User{}, err
	}

	m.api.SetToken(token)
	if err := m.store.Save(token); err != nil {
		m.log.Warn(ctx, "token not persisted", "err", err)
	}
	m.user = &u
	return u, nil
}

// Logout clears the stored token and the cached user. Resetting navigation
// to the login screen is the caller's responsibility.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(); err != nil {
		m.log.Warn(ctx, "token not cleared", "err", err)
	}
	m.api.ClearToken()
	m.user = nil
}

// CurrentUser returns the cached user, or nil when logged out.
func (m *Manager) CurrentUser() *models.User {
	return m.user
}

func (m *Manager) LoggedIn() bool {
	return m.user != nil
}

// SetUser replaces the cached user after a profile mutation (avatar upload,
// vacation toggle) returns a fresh copy.
func (m *Manager) SetUser(u models.User) {
	m.user = &u
}

// InitErr reports the silent startup-validation failure, if any.
func (m *Manager) InitErr() error {
	return m.initErr
}

// tokenExpired decodes the token's expiry claim without verifying the
// signature. A token that cannot be decoded is passed to the server as-is.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
