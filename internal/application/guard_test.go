package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
	"github.com/bnema/chirp/internal/ports/mocks"
)

func mustLocation(t *testing.T, raw string) Location {
	t.Helper()
	loc, err := ParseLocation(raw)
	require.NoError(t, err)
	return loc
}

func TestDecide(t *testing.T) {
	t.Parallel()

	alice := &domain.Identity{Username: "alice"}
	loading := domain.Session{IsLoading: true}
	anonymous := domain.Session{State: domain.SessionUnauthenticated}
	pending := domain.Session{State: domain.SessionAuthenticatedPendingIdentity, IsAuthenticated: true, Token: "t"}
	signedIn := domain.Session{State: domain.SessionAuthenticated, IsAuthenticated: true, Token: "t", User: alice}

	tests := []struct {
		name        string
		session     domain.Session
		location    string
		requireAuth bool
		want        Decision
	}{
		{name: "loading protected", session: loading, location: "/", requireAuth: true, want: Decision{Kind: DecisionLoading}},
		{name: "loading public", session: loading, location: "/login", want: Decision{Kind: DecisionLoading}},
		{name: "anonymous protected redirects to login", session: anonymous, location: "/post/7", requireAuth: true, want: Decision{Kind: DecisionRedirect, Target: "/login?redirect=/post/7"}},
		{name: "anonymous public renders", session: anonymous, location: "/login", want: Decision{Kind: DecisionRender}},
		{name: "pending identity protected", session: pending, location: "/", requireAuth: true, want: Decision{Kind: DecisionLoading}},
		{name: "pending identity on login", session: pending, location: "/login?redirect=/post/7", want: Decision{Kind: DecisionLoading}},
		{name: "signed in on login follows redirect", session: signedIn, location: "/login?redirect=/post/7", want: Decision{Kind: DecisionRedirect, Target: "/post/7"}},
		{name: "signed in on login without redirect", session: signedIn, location: "/login", want: Decision{Kind: DecisionRedirect, Target: "/"}},
		{name: "signed in on login redirecting to login", session: signedIn, location: "/login?redirect=/login", want: Decision{Kind: DecisionRedirect, Target: "/"}},
		{name: "signed in public-only redirects home", session: signedIn, location: "/register", want: Decision{Kind: DecisionRedirect, Target: "/"}},
		{name: "signed in protected renders", session: signedIn, location: "/profile/alice", requireAuth: true, want: Decision{Kind: DecisionRender}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Decide(tc.session, mustLocation(t, tc.location), tc.requireAuth))
		})
	}
}

func TestParseLocation(t *testing.T) {
	t.Parallel()

	loc := mustLocation(t, "post/9?redirect=/x")
	assert.Equal(t, "/post/9", loc.Path)
	assert.Equal(t, "/x", loc.RedirectTarget())

	empty := mustLocation(t, "")
	assert.Equal(t, DefaultPath, empty.Path)
	assert.Equal(t, "/", empty.String())
	assert.Empty(t, empty.RedirectTarget())
}

func TestGuardRedirectsAnonymousUserToLogin(t *testing.T) {
	api := mocks.NewMockAPI(t)
	store := mocks.NewMockSecretStore(t)
	session := NewSessionController(api, store, nil, nil)
	guard := NewGuard(session, nil)

	store.EXPECT().Get(mockAnyContext(), ports.SessionTokenKey).Return("", nil).Once()

	rendered := false
	view := guard.Wrap(func(context.Context, Request) error {
		rendered = true
		return nil
	}, true)

	err := view(context.Background(), Request{Location: mustLocation(t, "/post/3")})

	var redirect *RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, "/login?redirect=/post/3", redirect.Target)
	assert.False(t, rendered)
}

func TestGuardInjectsIdentity(t *testing.T) {
	api := mocks.NewMockAPI(t)
	store := mocks.NewMockSecretStore(t)
	session := NewSessionController(api, store, nil, nil)
	guard := NewGuard(session, nil)

	store.EXPECT().Get(mockAnyContext(), ports.SessionTokenKey).Return("token-1", nil).Once()
	api.EXPECT().Me(mockAnyContext()).Return(domain.Identity{Username: "alice"}, nil).Once()

	var got Request
	view := guard.Wrap(func(_ context.Context, req Request) error {
		got = req
		return nil
	}, true)

	require.NoError(t, view(context.Background(), Request{Location: mustLocation(t, "/")}))
	require.NotNil(t, got.Identity)
	assert.Equal(t, "alice", got.Identity.Username)

	// Second mount reuses the resolved session.
	require.NoError(t, view(context.Background(), Request{Location: mustLocation(t, "/")}))
}

func TestNavigatorFollowsRedirectsAndCapturesParams(t *testing.T) {
	t.Parallel()

	navigator := NewNavigator(nil)
	var visited []string
	var postID string

	navigator.Handle("/", func(_ context.Context, req Request) error {
		visited = append(visited, req.Location.Path)
		return &RedirectError{Target: "/post/42"}
	})
	navigator.Handle("/post/{id}", func(_ context.Context, req Request) error {
		visited = append(visited, req.Location.Path)
		postID = req.Params["id"]
		return nil
	})

	require.NoError(t, navigator.Navigate(context.Background(), "/"))
	assert.Equal(t, []string{"/", "/post/42"}, visited)
	assert.Equal(t, "42", postID)
}

func TestNavigatorStopsRedirectLoops(t *testing.T) {
	t.Parallel()

	navigator := NewNavigator(nil)
	navigator.Handle("/a", func(context.Context, Request) error { return &RedirectError{Target: "/b"} })
	navigator.Handle("/b", func(context.Context, Request) error { return &RedirectError{Target: "/a"} })

	err := navigator.Navigate(context.Background(), "/a")
	assert.ErrorIs(t, err, ErrTooManyRedirects)
}

func TestNavigatorUnknownRoute(t *testing.T) {
	t.Parallel()

	navigator := NewNavigator(nil)
	err := navigator.Open(context.Background(), "/", func(context.Context, Request) error {
		return &RedirectError{Target: "/nowhere"}
	})

	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestNavigatorReturnsViewError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	navigator := NewNavigator(nil)
	navigator.Handle("/", func(context.Context, Request) error { return boom })

	assert.ErrorIs(t, navigator.Navigate(context.Background(), "/"), boom)
}
