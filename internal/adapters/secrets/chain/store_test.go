package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	passstore "github.com/bnema/chirp/internal/adapters/secrets/pass"
	"github.com/bnema/chirp/internal/ports"
	portmocks "github.com/bnema/chirp/internal/ports/mocks"
)

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	preferred := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(preferred, fallback)
	require.NoError(t, err)

	return store, preferred, fallback
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockSecretStore(t))
	assert.Error(t, err)
	_, err = NewStore(portmocks.NewMockSecretStore(t), nil)
	assert.Error(t, err)
}

func TestStoreGetPrefersPreferredBackend(t *testing.T) {
	t.Parallel()

	store, preferred, _ := newChain(t)
	preferred.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), ports.SessionTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBack(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), ports.SessionTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetNotFoundInEitherBackend(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", ports.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", ports.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), ports.SessionTokenKey)
	assert.ErrorIs(t, err, ports.ErrSecretNotFound)
}

func TestStoreGetCombinesBackendErrors(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", errors.New("permission denied")).Once()

	_, err := store.Get(context.Background(), ports.SessionTokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "gpg failed")
	assert.ErrorContains(t, err, "permission denied")
	assert.NotErrorIs(t, err, ports.ErrSecretNotFound)
}

func TestStoreGetSkipsFallbackWhenCanceled(t *testing.T) {
	t.Parallel()

	store, preferred, _ := newChain(t)
	preferred.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), ports.SessionTokenKey)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStorePutClearsStaleFallbackCopy(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Put(mock.Anything, ports.SessionTokenKey, "token-1").Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), ports.SessionTokenKey, "token-1"))
}

func TestStorePutFallsBack(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Put(mock.Anything, ports.SessionTokenKey, "token-1").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, ports.SessionTokenKey, "token-1").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), ports.SessionTokenKey, "token-1"))
}

func TestStoreDeleteRemovesFromBothBackends(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), ports.SessionTokenKey))
}

func TestStoreDeleteToleratesUnavailablePass(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), ports.SessionTokenKey))
}

func TestStoreDeleteReportsFallbackFailure(t *testing.T) {
	t.Parallel()

	store, preferred, fallback := newChain(t)
	preferred.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, ports.SessionTokenKey).Return(errors.New("read-only fs")).Once()

	err := store.Delete(context.Background(), ports.SessionTokenKey)
	assert.ErrorContains(t, err, "read-only fs")
}
