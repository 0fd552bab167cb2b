package ports

import (
	"context"
	"errors"
)

// SessionTokenKey is the secret-store entry holding the bearer token.
const SessionTokenKey = "chirp/session/token"

var ErrSecretNotFound = errors.New("secret not found")

type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
