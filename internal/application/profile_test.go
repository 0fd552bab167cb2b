package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports/mocks"
)

func TestProfileServiceShowOwnProfile(t *testing.T) {
	api := mocks.NewMockAPI(t)
	session := NewSessionController(api, mocks.NewMockSecretStore(t), nil, nil)
	session.Login(domain.Identity{Username: "alice"}, "token-1")
	service := NewProfileService(api, session, nil, nil)

	api.EXPECT().GetUser(mockAnyContext(), "alice").Return(domain.Identity{Username: "alice", Name: "Alice"}, nil).Once()
	api.EXPECT().ListUserPosts(mockAnyContext(), "alice", domain.PageRequest{Page: 1, PerPage: ProfilePostsPerPage}).
		Return(pageOf(1, 1, 2, 2, 1), nil).Once()

	view, err := service.Show(context.Background(), "@alice", 0)
	require.NoError(t, err)
	assert.True(t, view.IsOwn)
	assert.Equal(t, []domain.PostID{2, 1}, postIDs(view.Posts.Posts()))

	profile := view.Profile()
	assert.Equal(t, 2, profile.Posts.Meta.Count)
	assert.Equal(t, "Alice", profile.User.Name)
}

func TestProfileServiceShowEmptyProfile(t *testing.T) {
	api := mocks.NewMockAPI(t)
	service := NewProfileService(api, nil, nil, nil)

	api.EXPECT().GetUser(mockAnyContext(), "bob").Return(domain.Identity{Username: "bob"}, nil).Once()
	api.EXPECT().ListUserPosts(mockAnyContext(), "bob", domain.PageRequest{Page: 1, PerPage: ProfilePostsPerPage}).
		Return(pageOf(1, 0, 0), nil).Once()

	view, err := service.Show(context.Background(), "bob", 0)
	require.NoError(t, err)
	assert.False(t, view.IsOwn)
	assert.Equal(t, DisplayEmpty, view.Posts.Display().Kind)
	assert.Equal(t, "@bob hasn't tweeted yet", view.EmptyMessage())
}

func TestProfileServiceShowUnknownUser(t *testing.T) {
	api := mocks.NewMockAPI(t)
	service := NewProfileService(api, nil, nil, nil)

	api.EXPECT().GetUser(mockAnyContext(), "ghost").Return(domain.Identity{}, &domain.APIError{Status: 404}).Once()

	_, err := service.Show(context.Background(), "ghost", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Show(context.Background(), " ", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileServiceUpdateRefreshesSessionIdentity(t *testing.T) {
	api := mocks.NewMockAPI(t)
	session := NewSessionController(api, mocks.NewMockSecretStore(t), nil, nil)
	session.Login(domain.Identity{Username: "alice", Name: "Alice"}, "token-1")
	service := NewProfileService(api, session, nil, nil)

	form := domain.ProfileForm{Name: "Alice B", Bio: "hi"}
	api.EXPECT().UpdateProfile(mockAnyContext(), form).Return(domain.Identity{Username: "alice", Name: "Alice B", Bio: "hi"}, nil).Once()

	identity, err := service.Update(context.Background(), domain.ProfileForm{Name: " Alice B ", Bio: "hi "})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", identity.Name)
	assert.Equal(t, "Alice B", session.Snapshot().User.Name)
}

func TestProfileServiceUpdateFailureNotifies(t *testing.T) {
	api := mocks.NewMockAPI(t)
	notify := mocks.NewMockNotifier(t)
	service := NewProfileService(api, nil, notify, nil)

	api.EXPECT().UpdateProfile(mockAnyContext(), domain.ProfileForm{Name: "Alice"}).Return(domain.Identity{}, errors.New("boom")).Once()
	notify.EXPECT().Error("Failed to update profile").Once()

	_, err := service.Update(context.Background(), domain.ProfileForm{Name: "Alice"})
	require.Error(t, err)

	_, err = service.Update(context.Background(), domain.ProfileForm{})
	require.ErrorIs(t, err, domain.ErrValidation)
}
