package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"catalogkeeper/internal/client/storage"
	"catalogkeeper/internal/models"
	"catalogkeeper/internal/shared"
	"catalogkeeper/internal/token"
	pkgapi "catalogkeeper/pkg/api"
)

// AuthAPI is the slice of the HTTP client the session manager needs.
// The two auth endpoints are the only requests made without a bearer token.
type AuthAPI interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Signup(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.MessageResponse, error)
}

// Manager owns the credential lifecycle and derives the user identity from
// it. It is the single authority on whether the user is authenticated:
// every mutating operation in the catalog consults it before acting.
//
// Credential and identity are always replaced as a pair under the lock, so
// no caller can observe one without the other.
type Manager struct {
	api      AuthAPI
	store    storage.CredentialStorage
	mu       sync.Mutex
	cred     string
	identity *models.Identity
	lastErr  error
}

// NewManager creates a session manager over the given API client and
// durable credential slot. Call Initialize once at startup.
func NewManager(api AuthAPI, store storage.CredentialStorage) *Manager {
	return &Manager{
		api:   api,
		store: store,
	}
}

// Initialize restores a previously persisted credential, if any. Decoding
// is local; server-side validity is not checked until the first request.
// A stored credential that fails to decode is treated as corrupt and
// discarded.
func (m *Manager) Initialize(ctx context.Context) error {
	tok, err := m.store.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read stored credential: %w", err)
	}

	identity, err := token.Decode(tok)
	if err != nil {
		slog.Warn("discarding corrupt stored credential", "error", err)
		if delErr := m.store.DeleteCredential(ctx); delErr != nil {
			return fmt.Errorf("failed to discard corrupt credential: %w", delErr)
		}
		return nil
	}

	m.mu.Lock()
	m.cred = tok
	m.identity = &identity
	m.mu.Unlock()

	slog.Debug("session restored", "user", identity.Email)
	return nil
}

// Login authenticates against the remote service and adopts the issued
// credential. On rejection the previous (unauthenticated) state is kept and
// the classified error is both recorded and returned.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.setLastError(err)
		return err
	}

	identity, err := token.Decode(resp.Token)
	if err != nil {
		err = fmt.Errorf("server issued an unreadable token: %w", err)
		m.setLastError(err)
		return err
	}

	// Persist before adopting so a restart after login sees the session
	if err := m.store.SaveCredential(ctx, resp.Token); err != nil {
		err = fmt.Errorf("failed to persist credential: %w", err)
		m.setLastError(err)
		return err
	}

	m.mu.Lock()
	m.cred = resp.Token
	m.identity = &identity
	m.lastErr = nil
	m.mu.Unlock()

	slog.Debug("logged in", "user", identity.Email)
	return nil
}

// Signup registers a new identity and, on success, continues with a login
// using the same credentials. A registration failure is surfaced without
// attempting the login.
func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	if _, err := m.api.Signup(ctx, pkgapi.SignupRequest{Name: name, Email: email, Password: password}); err != nil {
		m.setLastError(err)
		return err
	}

	return m.Login(ctx, email, password)
}

// Logout clears the durable slot and the in-memory session. It never
// contacts the remote service and always succeeds locally; a slot that
// cannot be emptied is logged, not surfaced.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.DeleteCredential(ctx); err != nil && !errors.Is(err, storage.ErrCredentialNotFound) {
		slog.Warn("failed to clear stored credential", "error", err)
	}

	m.mu.Lock()
	m.cred = ""
	m.identity = nil
	m.lastErr = nil
	m.mu.Unlock()
}

// IsAuthenticated reports whether an identity is currently held
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity != nil
}

// Identity returns a copy of the current identity; ok is false when the
// session is unauthenticated.
func (m *Manager) Identity() (models.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return models.Identity{}, false
	}
	return *m.identity, true
}

// LastError returns the most recent classified failure, or nil
func (m *Manager) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Token implements api.AuthSource
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cred == "" {
		return "", false
	}
	return m.cred, true
}

// ForceLogout implements api.AuthSource. It is invoked by the HTTP
// boundary when the server rejects a previously valid credential; cleanup
// is the same as Logout but the expiry is recorded so the UI can explain
// the redirect.
func (m *Manager) ForceLogout(ctx context.Context) {
	m.Logout(ctx)

	m.mu.Lock()
	m.lastErr = shared.ErrSessionExpired
	m.mu.Unlock()
}

func (m *Manager) setLastError(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}
