package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

var ErrEmptyToken = errors.New("server returned an empty token")

type AuthService struct {
	api     ports.IdentityAPI
	store   ports.SecretStore
	session *SessionController
	notify  ports.Notifier
	logger  *slog.Logger
}

func NewAuthService(api ports.IdentityAPI, store ports.SecretStore, session *SessionController, notify ports.Notifier, logger *slog.Logger) *AuthService {
	if notify == nil {
		notify = ports.NopNotifier{}
	}

	return &AuthService{api: api, store: store, session: session, notify: notify, logger: loggerOrDiscard(logger)}
}

// Login exchanges credentials for a token, stores it and resolves the identity.
// The stored token is removed again when the identity cannot be fetched.
func (s *AuthService) Login(ctx context.Context, form domain.LoginForm) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}
	form.Username = strings.TrimSpace(form.Username)
	if err := form.Validate(); err != nil {
		return domain.Identity{}, err
	}

	token, err := s.api.Login(ctx, form)
	if err != nil {
		s.notify.Error(domain.UserMessage(err))
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, fmt.Errorf("login: %w", ErrEmptyToken)
	}

	if err := s.store.Put(ctx, ports.SessionTokenKey, token); err != nil {
		return domain.Identity{}, fmt.Errorf("store session token: %w", err)
	}

	identity, err := s.api.Me(ctx)
	if err != nil {
		if rollbackErr := s.store.Delete(ctx, ports.SessionTokenKey); rollbackErr != nil {
			return domain.Identity{}, fmt.Errorf("resolve identity and rollback stored token: %w", errors.Join(err, rollbackErr))
		}
		return domain.Identity{}, fmt.Errorf("resolve identity: %w", err)
	}

	s.session.Login(identity, token)
	s.logger.Info("logged in", "username", identity.Username)
	s.notify.Success("Logged in as " + identity.Handle())

	return identity, nil
}

func (s *AuthService) Register(ctx context.Context, form domain.RegisterForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Username = strings.TrimSpace(form.Username)
	if err := form.Validate(); err != nil {
		return err
	}

	if err := s.api.Register(ctx, form); err != nil {
		s.notify.Error(domain.UserMessage(err))
		return fmt.Errorf("register: %w", err)
	}

	s.notify.Success("Account successfully created!")
	return nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.notify.Info("Logged out")
	return nil
}
