package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
	portmocks "github.com/bnema/chirp/internal/ports/mocks"
)

func newTestClient(t *testing.T, server *httptest.Server, tokens ports.SecretStore) *Client {
	t.Helper()

	client, err := NewClient(Config{
		BaseURL:    server.URL + "/api/",
		HTTPClient: server.Client(),
		Tokens:     tokens,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)

	return client
}

func tokenStore(t *testing.T, token string) ports.SecretStore {
	t.Helper()

	store := portmocks.NewMockSecretStore(t)
	if token == "" {
		store.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return("", ports.ErrSecretNotFound).Maybe()
	} else {
		store.EXPECT().Get(mock.Anything, ports.SessionTokenKey).Return(token, nil).Maybe()
	}

	return store
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{BaseURL: "ftp://example.com"})
	assert.ErrorContains(t, err, "must be http or https")
}

func TestClientListPostsDecodesEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/post", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get(requestIDHeader))
		assert.NoError(t, err)

		_, _ = io.WriteString(w, `{
			"data": [
				{"id": 2, "text": "second", "total_likes": 3, "is_liked": true,
				 "user": {"id": "u1", "name": "Alice", "username": "alice", "bio": null, "image_url": "a.png"},
				 "created_at": "2026-01-02T03:04:05Z"},
				{"id": 1, "text": "first", "parent_id": 9, "user": {"id": 7, "username": "bob"}}
			],
			"meta": {"page": 1, "per_page": 10, "max_page": 3, "count": 25}
		}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, "token-1"))

	page, err := client.ListPosts(context.Background(), domain.PageRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, domain.PageMeta{Page: 1, PerPage: 10, MaxPage: 3, Count: 25}, page.Meta)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, domain.PostID(2), page.Posts[0].ID)
	assert.Equal(t, "alice", page.Posts[0].Author.Username)
	assert.Equal(t, "a.png", page.Posts[0].Author.ImageURL)
	assert.True(t, page.Posts[0].IsLiked)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), page.Posts[0].CreatedAt)
	require.NotNil(t, page.Posts[1].ParentID)
	assert.Equal(t, domain.PostID(9), *page.Posts[1].ParentID)
	assert.Equal(t, "7", page.Posts[1].Author.ID)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Values("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, ""))
	require.NoError(t, client.Register(context.Background(), domain.RegisterForm{Name: "A", Username: "a", Password: "password1"}))
}

func TestClientMapsErrorShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantIs      error
	}{
		{name: "message field", status: http.StatusBadRequest, body: `{"message":"Invalid credentials"}`, wantMessage: "Invalid credentials"},
		{name: "error field", status: http.StatusUnauthorized, body: `{"error":"token expired"}`, wantMessage: "token expired", wantIs: domain.ErrUnauthorized},
		{name: "not json", status: http.StatusNotFound, body: `nope`, wantMessage: "api status 404", wantIs: domain.ErrNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer server.Close()

			client := newTestClient(t, server, tokenStore(t, ""))
			_, err := client.Login(context.Background(), domain.LoginForm{Username: "a", Password: "password1"})

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMessage, domain.UserMessage(err))
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
		})
	}
}

func TestClientRetriesIdempotentReads(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"data":{"id":"u1","username":"alice"}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, ""))
	user, err := client.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientDoesNotRetryClientErrorsOrMutations(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, "token-1"))

	_, err := client.GetPost(context.Background(), 5, domain.PageRequest{Page: 1, PerPage: 50})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())

	err = client.Like(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())

	_, err = client.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientPostMutations(t *testing.T) {
	t.Parallel()

	type seen struct {
		method string
		path   string
		body   map[string]any
	}
	requests := make(chan seen, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		requests <- seen{method: r.Method, path: r.URL.Path, body: body}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, "token-1"))
	parent := domain.PostID(3)

	require.NoError(t, client.CreatePost(context.Background(), "hello", nil))
	require.NoError(t, client.CreatePost(context.Background(), "reply", &parent))
	require.NoError(t, client.UpdatePost(context.Background(), 4, "edited"))
	require.NoError(t, client.DeletePost(context.Background(), 4))
	require.NoError(t, client.Like(context.Background(), 4))
	require.NoError(t, client.Unlike(context.Background(), 4))
	close(requests)

	var got []seen
	for req := range requests {
		got = append(got, req)
	}

	require.Len(t, got, 6)
	assert.Equal(t, seen{method: http.MethodPost, path: "/api/post", body: map[string]any{"text": "hello"}}, got[0])
	assert.Equal(t, seen{method: http.MethodPost, path: "/api/post", body: map[string]any{"text": "reply", "parent_id": float64(3)}}, got[1])
	assert.Equal(t, seen{method: http.MethodPut, path: "/api/post/4", body: map[string]any{"text": "edited"}}, got[2])
	assert.Equal(t, http.MethodDelete, got[3].method)
	assert.Equal(t, "/api/post/4", got[3].path)
	assert.Equal(t, http.MethodPut, got[4].method)
	assert.Equal(t, "/api/likes/4", got[4].path)
	assert.Equal(t, http.MethodDelete, got[5].method)
	assert.Equal(t, "/api/likes/4", got[5].path)
}

func TestClientGetPostReturnsNestedReplies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/post/8", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		_, _ = io.WriteString(w, `{"data":{"id":8,"text":"root","replies":[{"id":9,"text":"r1","parent_id":8},{"id":10,"is_deleted":true,"parent_id":8}]}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, ""))
	detail, err := client.GetPost(context.Background(), 8, domain.PageRequest{Page: 1, PerPage: 50})
	require.NoError(t, err)

	assert.Equal(t, "root", detail.Post.Text)
	require.Len(t, detail.Replies, 2)
	assert.True(t, detail.Replies[1].IsDeleted)
}

func TestClientUpdateProfileSendsMultipart(t *testing.T) {
	t.Parallel()

	imagePath := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png-bytes"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/user/update", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "Alice", r.FormValue("name"))
		assert.Equal(t, "hello", r.FormValue("bio"))

		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "avatar.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))

		_, _ = io.WriteString(w, `{"data":{"id":"u1","name":"Alice","username":"alice","bio":"hello","image_url":"avatar.png"}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, "token-1"))
	identity, err := client.UpdateProfile(context.Background(), domain.ProfileForm{Name: "Alice", Bio: "hello", ImagePath: imagePath})
	require.NoError(t, err)
	assert.Equal(t, "hello", identity.Bio)
}

func TestClientMeRejectsEmptyIdentity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":null}`)
	}))
	defer server.Close()

	client := newTestClient(t, server, tokenStore(t, "token-1"))
	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
