package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
	"github.com/bnema/chirp/internal/ports/mocks"
)

func TestSessionControllerStartsLoading(t *testing.T) {
	controller := NewSessionController(mocks.NewMockAPI(t), mocks.NewMockSecretStore(t), nil, nil)

	snapshot := controller.Snapshot()
	assert.Equal(t, domain.SessionInitializing, snapshot.State)
	assert.True(t, snapshot.IsLoading)
	assert.False(t, snapshot.IsAuthenticated)
}

func TestSessionControllerResolveWithoutToken(t *testing.T) {
	api := mocks.NewMockAPI(t)
	store := mocks.NewMockSecretStore(t)
	controller := NewSessionController(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), ports.SessionTokenKey).Return("", errors.New("secret not found"))

	require.NoError(t, controller.Resolve(context.Background()))

	snapshot := controller.Snapshot()
	assert.Equal(t, domain.SessionUnauthenticated, snapshot.State)
	assert.False(t, snapshot.IsLoading)
	assert.False(t, snapshot.IsAuthenticated)
	assert.Nil(t, snapshot.User)
}

func TestSessionControllerResolveFetchesIdentityOnce(t *testing.T) {
	api := mocks.NewMockAPI(t)
	store := mocks.NewMockSecretStore(t)
	controller := NewSessionController(api, store, nil, nil)

	store.EXPECT().Get(mockAnyContext(), ports.SessionTokenKey).Return("token-1", nil).Times(2)
	api.EXPECT().Me(mockAnyContext()).Return(domain.Identity{ID: "u1", Username: "alice"}, nil).Once()

	require.NoError(t, controller.Resolve(context.Background()))
	require.NoError(t, controller.Resolve(context.Background()))

	snapshot := controller.Snapshot()
	assert.Equal(t, domain.SessionAuthenticated, snapshot.State)
	assert.True(t, snapshot.HasIdentity())
	assert.Equal(t, "alice", snapshot.Username())
	assert.Equal(t, "token-1", snapshot.Token)
	assert.False(t, snapshot.IsLoading)
}

func TestSessionControllerResolveFailureDiscardsToken(t *testing.T) {
	api := mocks.NewMockAPI(t)
	store := mocks.NewMockSecretStore(t)
	notify := mocks.NewMockNotifier(t)
	controller := NewSessionController(api, store, notify, nil)

	store.EXPECT().Get(mockAnyContext(), ports.SessionTokenKey).Return("stale", nil)
	api.EXPECT().Me(mockAnyContext()).Return(domain.Identity{}, &domain.APIError{Status: http.StatusUnauthorized}).Once()
	notify.EXPECT().Error("Login session is invalid").Once()
	store.EXPECT().Delete(mockAnyContext(), ports.SessionTokenKey).Return(nil).Once()

	err := controller.Resolve(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	snapshot := controller.Snapshot()
	assert.Equal(t, domain.SessionUnauthenticated, snapshot.State)
	assert.False(t, snapshot.IsAuthenticated)
	assert.False(t, snapshot.IsLoading)
	assert.Empty(t, snapshot.Token)
}

func TestSessionControllerResolveDetectsRemovedToken(t *testing.T) {
	api := mocks.NewMockAPI(t)
	store := mocks.NewMockSecretStore(t)
	controller := NewSessionController(api, store, nil, nil)
	controller.Login(domain.Identity{Username: "alice"}, "token-1")

	store.EXPECT().Get(mockAnyContext(), ports.SessionTokenKey).Return("", nil)

	require.NoError(t, controller.Resolve(context.Background()))
	assert.Equal(t, domain.SessionUnauthenticated, controller.State())
}

func TestSessionControllerCheckUnauthorizedInvalidates(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	notify := mocks.NewMockNotifier(t)
	controller := NewSessionController(mocks.NewMockAPI(t), store, notify, nil)
	controller.Login(domain.Identity{Username: "alice"}, "token-1")

	store.EXPECT().Delete(mockAnyContext(), ports.SessionTokenKey).Return(nil).Once()
	notify.EXPECT().Error(mock.AnythingOfType("string")).Once()

	cause := &domain.APIError{Status: http.StatusUnauthorized}
	assert.Same(t, cause, controller.CheckUnauthorized(context.Background(), cause))
	assert.Equal(t, domain.SessionUnauthenticated, controller.State())

	other := errors.New("boom")
	assert.Same(t, other, controller.CheckUnauthorized(context.Background(), other))
}

func TestSessionControllerUpdateIdentityRequiresSession(t *testing.T) {
	controller := NewSessionController(mocks.NewMockAPI(t), mocks.NewMockSecretStore(t), nil, nil)

	controller.UpdateIdentity(domain.Identity{Username: "ghost"})
	assert.Nil(t, controller.Snapshot().User)

	controller.Login(domain.Identity{Username: "alice", Name: "Alice"}, "token-1")
	controller.UpdateIdentity(domain.Identity{Username: "alice", Name: "Alice B"})
	assert.Equal(t, "Alice B", controller.Snapshot().User.Name)
}

func TestSessionControllerSnapshotIsCopy(t *testing.T) {
	controller := NewSessionController(mocks.NewMockAPI(t), mocks.NewMockSecretStore(t), nil, nil)
	controller.Login(domain.Identity{Username: "alice"}, "token-1")

	snapshot := controller.Snapshot()
	snapshot.User.Username = "mallory"

	assert.Equal(t, "alice", controller.Snapshot().Username())
}

func mockAnyContext() interface{} {
	return mock.Anything
}
