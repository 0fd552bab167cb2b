package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

type LikeService struct {
	api     ports.LikeAPI
	session *SessionController
	notify  ports.Notifier
	logger  *slog.Logger
}

func NewLikeService(api ports.LikeAPI, session *SessionController, notify ports.Notifier, logger *slog.Logger) *LikeService {
	if notify == nil {
		notify = ports.NopNotifier{}
	}

	return &LikeService{api: api, session: session, notify: notify, logger: loggerOrDiscard(logger)}
}

// Toggle flips the like state of post optimistically and sends the matching
// request. When the request fails a single inverse request is sent and the
// original post is returned with the error.
func (s *LikeService) Toggle(ctx context.Context, post domain.Post) (domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return post, err
	}

	toggled := post.WithLikeToggled()
	err := s.send(ctx, post.ID, toggled.IsLiked)
	if err == nil {
		return toggled, nil
	}

	s.logger.Warn("like toggle failed, compensating", "post_id", post.ID, "liked", toggled.IsLiked, "error", err)
	if compensateErr := s.send(ctx, post.ID, post.IsLiked); compensateErr != nil {
		err = errors.Join(err, fmt.Errorf("compensate like state: %w", compensateErr))
	}

	s.notify.Error("Failed to update like: " + domain.UserMessage(err))
	if s.session != nil {
		s.session.CheckUnauthorized(ctx, err)
	}

	return post, fmt.Errorf("toggle like on post %s: %w", post.ID, err)
}

func (s *LikeService) send(ctx context.Context, id domain.PostID, liked bool) error {
	if liked {
		return s.api.Like(ctx, id)
	}

	return s.api.Unlike(ctx, id)
}
