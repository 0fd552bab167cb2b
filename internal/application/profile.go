package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

const ProfilePostsPerPage = 50

// ProfileView is a loaded profile with a pager over the user's posts.
type ProfileView struct {
	User  domain.Identity
	IsOwn bool
	Posts *FeedPager
}

// EmptyMessage is shown when the user has no posts.
func (v ProfileView) EmptyMessage() string {
	return v.User.Handle() + " hasn't tweeted yet"
}

func (v ProfileView) Profile() domain.Profile {
	return domain.Profile{
		User:  v.User,
		IsOwn: v.IsOwn,
		Posts: domain.PostPage{Posts: v.Posts.Posts(), Meta: v.Posts.Meta()},
	}
}

type ProfileService struct {
	api     ports.API
	session *SessionController
	notify  ports.Notifier
	logger  *slog.Logger
}

func NewProfileService(api ports.API, session *SessionController, notify ports.Notifier, logger *slog.Logger) *ProfileService {
	if notify == nil {
		notify = ports.NopNotifier{}
	}

	return &ProfileService{api: api, session: session, notify: notify, logger: loggerOrDiscard(logger)}
}

// Show loads username's profile and the first page of their posts.
func (s *ProfileService) Show(ctx context.Context, username string, extraPages int) (ProfileView, error) {
	if err := ctx.Err(); err != nil {
		return ProfileView{}, err
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return ProfileView{}, &domain.ValidationError{Fields: []domain.FieldError{{Field: "username", Message: "Username is required"}}}
	}

	user, err := s.api.GetUser(ctx, username)
	if err != nil {
		return ProfileView{}, fmt.Errorf("get user %s: %w", username, err)
	}

	pager := NewFeedPager(ProfilePostsPerPage)
	fetch := func(ctx context.Context, req domain.PageRequest) (domain.PostPage, error) {
		return s.api.ListUserPosts(ctx, username, req)
	}
	if err := pager.Load(ctx, fetch, extraPages); err != nil {
		return ProfileView{}, fmt.Errorf("list posts of %s: %w", username, err)
	}

	return ProfileView{
		User:  user,
		IsOwn: s.session != nil && s.session.Snapshot().Username() == user.Username,
		Posts: pager,
	}, nil
}

// Update edits the caller's profile and refreshes the session identity.
func (s *ProfileService) Update(ctx context.Context, form domain.ProfileForm) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Bio = strings.TrimSpace(form.Bio)
	if err := form.Validate(); err != nil {
		return domain.Identity{}, err
	}

	identity, err := s.api.UpdateProfile(ctx, form)
	if err != nil {
		s.notify.Error("Failed to update profile")
		if s.session != nil {
			s.session.CheckUnauthorized(ctx, err)
		}
		return domain.Identity{}, fmt.Errorf("update profile: %w", err)
	}

	if s.session != nil {
		s.session.UpdateIdentity(identity)
	}
	s.notify.Success("Profile updated successfully")

	return identity, nil
}
