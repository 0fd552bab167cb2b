package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

// SessionController owns the process-wide session. It is the only writer of
// session state and of the stored session token.
type SessionController struct {
	api    ports.IdentityAPI
	store  ports.SecretStore
	notify ports.Notifier
	logger *slog.Logger

	mu        sync.Mutex
	session   domain.Session
	resolving bool
}

func NewSessionController(api ports.IdentityAPI, store ports.SecretStore, notify ports.Notifier, logger *slog.Logger) *SessionController {
	if notify == nil {
		notify = ports.NopNotifier{}
	}

	return &SessionController{
		api:    api,
		store:  store,
		notify: notify,
		logger: loggerOrDiscard(logger),
		session: domain.Session{
			State:     domain.SessionInitializing,
			IsLoading: true,
		},
	}
}

func (c *SessionController) Snapshot() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.session
	if c.session.User != nil {
		user := *c.session.User
		snapshot.User = &user
	}

	return snapshot
}

func (c *SessionController) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.State
}

// Resolve reconciles the session with the stored token. Without a token the
// session becomes unauthenticated. With a token and no cached identity the
// identity is fetched once; any failure discards the token. Loading is always
// marked complete on return.
func (c *SessionController) Resolve(ctx context.Context) error {
	defer c.stopLoading()

	token := c.readToken(ctx)
	if token == "" {
		c.mu.Lock()
		if c.session.IsAuthenticated {
			c.logger.Debug("session token gone, clearing session")
		}
		c.clearLocked()
		c.mu.Unlock()
		return nil
	}

	c.mu.Lock()
	if c.session.User != nil && c.session.Token == token {
		c.session.IsAuthenticated = true
		c.session.State = domain.SessionAuthenticated
		c.mu.Unlock()
		return nil
	}
	if c.resolving {
		c.mu.Unlock()
		return nil
	}
	c.resolving = true
	c.session.IsAuthenticated = true
	c.session.Token = token
	c.session.User = nil
	c.session.State = domain.SessionAuthenticatedPendingIdentity
	c.mu.Unlock()

	identity, err := c.api.Me(ctx)

	c.mu.Lock()
	c.resolving = false
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("identity resolution failed, discarding session token", "error", err)
		c.notify.Error("Login session is invalid")
		if deleteErr := c.store.Delete(ctx, ports.SessionTokenKey); deleteErr != nil {
			c.logger.Warn("failed to delete session token", "error", deleteErr)
		}
		c.mu.Lock()
		c.clearLocked()
		c.mu.Unlock()
		return fmt.Errorf("resolve identity: %w", err)
	}

	c.Login(identity, token)
	return nil
}

// Login marks the session authenticated with an already persisted token.
func (c *SessionController) Login(identity domain.Identity, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = domain.Session{
		State:           domain.SessionAuthenticated,
		IsAuthenticated: true,
		User:            &identity,
		Token:           token,
	}
}

// UpdateIdentity replaces the cached identity after a profile change.
func (c *SessionController) UpdateIdentity(identity domain.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.IsAuthenticated {
		return
	}
	c.session.User = &identity
}

// Logout deletes the stored token and clears the session.
func (c *SessionController) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.clearLocked()
	c.session.IsLoading = false
	c.mu.Unlock()

	if err := c.store.Delete(ctx, ports.SessionTokenKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}

	return nil
}

// Invalidate is Logout triggered by the server rejecting the token.
func (c *SessionController) Invalidate(ctx context.Context) {
	if err := c.Logout(ctx); err != nil {
		c.logger.Warn("failed to invalidate session", "error", err)
	}
	c.notify.Error("Session expired, please log in again")
}

// CheckUnauthorized invalidates the session when err is a 401 and returns err unchanged.
func (c *SessionController) CheckUnauthorized(ctx context.Context, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		c.Invalidate(ctx)
	}

	return err
}

func (c *SessionController) readToken(ctx context.Context) string {
	token, err := c.store.Get(ctx, ports.SessionTokenKey)
	if err != nil {
		c.logger.Debug("no stored session token", "error", err)
		return ""
	}

	return strings.TrimSpace(token)
}

func (c *SessionController) stopLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.IsLoading = false
}

func (c *SessionController) clearLocked() {
	c.session.IsAuthenticated = false
	c.session.User = nil
	c.session.Token = ""
	c.session.State = domain.SessionUnauthenticated
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return logger
}
