package ports

import (
	"context"

	"github.com/bnema/chirp/internal/domain"
)

type IdentityAPI interface {
	Login(ctx context.Context, form domain.LoginForm) (string, error)
	Register(ctx context.Context, form domain.RegisterForm) error
	Me(ctx context.Context) (domain.Identity, error)
	GetUser(ctx context.Context, username string) (domain.Identity, error)
	UpdateProfile(ctx context.Context, form domain.ProfileForm) (domain.Identity, error)
}

type PostAPI interface {
	ListPosts(ctx context.Context, req domain.PageRequest) (domain.PostPage, error)
	ListUserPosts(ctx context.Context, username string, req domain.PageRequest) (domain.PostPage, error)
	GetPost(ctx context.Context, id domain.PostID, req domain.PageRequest) (domain.PostDetail, error)
	CreatePost(ctx context.Context, text string, parentID *domain.PostID) error
	UpdatePost(ctx context.Context, id domain.PostID, text string) error
	DeletePost(ctx context.Context, id domain.PostID) error
}

type LikeAPI interface {
	Like(ctx context.Context, id domain.PostID) error
	Unlike(ctx context.Context, id domain.PostID) error
}

// API is the full REST surface consumed by the client.
type API interface {
	IdentityAPI
	PostAPI
	LikeAPI
}
