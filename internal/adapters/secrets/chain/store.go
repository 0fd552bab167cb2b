package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/chirp/internal/adapters/secrets/file"
	passstore "github.com/bnema/chirp/internal/adapters/secrets/pass"
	"github.com/bnema/chirp/internal/ports"
)

// Store writes to the preferred backend and falls back to the second one when
// it is unavailable. Reads consult both so a token written by either is found.
type Store struct {
	preferred ports.SecretStore
	fallback  ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNilBackend = errors.New("credential backend is nil")

func NewStore(preferred ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if preferred == nil || fallback == nil {
		return nil, errNilBackend
	}

	return &Store{preferred: preferred, fallback: fallback}, nil
}

// NewPassWithFileFallback prefers pass and falls back to plain files under dir.
func NewPassWithFileFallback(dir string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(dir))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.preferred.Put(ctx, key, value)
	if err == nil {
		// Drop a stale copy so Get cannot return an older token.
		if deleteErr := s.fallback.Delete(ctx, key); deleteErr != nil && isCanceled(deleteErr) {
			return deleteErr
		}
		return nil
	}
	if isCanceled(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("store credential %q: %w", key, errors.Join(err, fallbackErr))
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.preferred.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isCanceled(err) {
		return "", err
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}
	if errors.Is(err, ports.ErrSecretNotFound) && errors.Is(fallbackErr, ports.ErrSecretNotFound) {
		return "", fmt.Errorf("credential %q: %w", key, ports.ErrSecretNotFound)
	}

	return "", fmt.Errorf("read credential %q: %w", key, errors.Join(err, fallbackErr))
}

// Delete removes the credential from both backends.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.preferred.Delete(ctx, key)
	if isCanceled(err) {
		return err
	}
	fallbackErr := s.fallback.Delete(ctx, key)

	switch {
	case fallbackErr != nil:
		// The preferred backend failing alone usually means it is unavailable.
		return fmt.Errorf("delete credential %q: %w", key, errors.Join(err, fallbackErr))
	case err != nil && !errors.Is(err, passstore.ErrUnavailable):
		return fmt.Errorf("delete credential %q: %w", key, err)
	default:
		return nil
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
