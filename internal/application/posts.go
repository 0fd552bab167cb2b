package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

const DetailRepliesPerPage = 50

// DraftSavedError reports a failed submission whose text was kept as a draft.
type DraftSavedError struct {
	DraftID domain.DraftID
	Err     error
}

func (e *DraftSavedError) Error() string {
	return fmt.Sprintf("%v (saved as draft %s)", e.Err, e.DraftID)
}

func (e *DraftSavedError) Unwrap() error {
	return e.Err
}

type PostService struct {
	api     ports.PostAPI
	drafts  ports.DraftRepository
	session *SessionController
	notify  ports.Notifier
	clock   ports.Clock
	logger  *slog.Logger
}

func NewPostService(api ports.PostAPI, drafts ports.DraftRepository, session *SessionController, notify ports.Notifier, clock ports.Clock, logger *slog.Logger) *PostService {
	if notify == nil {
		notify = ports.NopNotifier{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PostService{
		api:     api,
		drafts:  drafts,
		session: session,
		notify:  notify,
		clock:   clock,
		logger:  loggerOrDiscard(logger),
	}
}

// Create publishes text, as a reply when parentID is set.
func (s *PostService) Create(ctx context.Context, text string, parentID *domain.PostID) error {
	return s.submit(ctx, domain.Draft{Text: text, ParentID: parentID})
}

func (s *PostService) Edit(ctx context.Context, id domain.PostID, text string) error {
	return s.submit(ctx, domain.Draft{Text: text, EditOf: &id})
}

func (s *PostService) Delete(ctx context.Context, id domain.PostID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.api.DeletePost(ctx, id); err != nil {
		s.notify.Error("Failed to delete post")
		s.checkUnauthorized(ctx, err)
		return fmt.Errorf("delete post %s: %w", id, err)
	}

	s.notify.Success("Post deleted successfully")
	return nil
}

// Detail loads a post with its first page of replies. Deleted replies are dropped.
func (s *PostService) Detail(ctx context.Context, id domain.PostID) (domain.PostDetail, error) {
	if err := ctx.Err(); err != nil {
		return domain.PostDetail{}, err
	}

	detail, err := s.api.GetPost(ctx, id, domain.PageRequest{Page: 1, PerPage: DetailRepliesPerPage})
	if err != nil {
		return domain.PostDetail{}, fmt.Errorf("get post %s: %w", id, err)
	}
	detail.Replies = domain.VisiblePosts(detail.Replies)
	detail.Post.Replies = domain.VisiblePosts(detail.Post.Replies)

	return detail, nil
}

// RetryDraft resubmits a saved draft. The draft is removed once the submission succeeds.
func (s *PostService) RetryDraft(ctx context.Context, id domain.DraftID) error {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get draft %s: %w", id, err)
	}

	return s.submit(ctx, draft)
}

// ListDrafts returns saved drafts, oldest first.
func (s *PostService) ListDrafts(ctx context.Context) ([]domain.Draft, error) {
	drafts, err := s.drafts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.Before(drafts[j].CreatedAt)
	})

	return drafts, nil
}

func (s *PostService) DiscardDraft(ctx context.Context, id domain.DraftID) error {
	if err := s.drafts.Delete(ctx, id); err != nil {
		return fmt.Errorf("discard draft %s: %w", id, err)
	}

	return nil
}

func (s *PostService) submit(ctx context.Context, draft domain.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := (domain.PostForm{Text: draft.Text}).Validate(); err != nil {
		return err
	}

	text := strings.TrimSpace(draft.Text)
	var err error
	switch {
	case draft.EditOf != nil:
		err = s.api.UpdatePost(ctx, *draft.EditOf, text)
	default:
		err = s.api.CreatePost(ctx, text, draft.ParentID)
	}

	if err != nil {
		s.notify.Error(failureMessage(draft) + ": " + domain.UserMessage(err))
		s.checkUnauthorized(ctx, err)

		saved, saveErr := s.saveDraft(ctx, draft, err)
		if saveErr != nil {
			return fmt.Errorf("%s: %w", submitAction(draft), errors.Join(err, saveErr))
		}
		return fmt.Errorf("%s: %w", submitAction(draft), &DraftSavedError{DraftID: saved.ID, Err: err})
	}

	if draft.ID != "" {
		if deleteErr := s.drafts.Delete(ctx, draft.ID); deleteErr != nil && !errors.Is(deleteErr, domain.ErrDraftNotFound) {
			s.logger.Warn("failed to delete submitted draft", "draft_id", draft.ID, "error", deleteErr)
		}
	}

	s.notify.Success(successMessage(draft))
	return nil
}

func (s *PostService) saveDraft(ctx context.Context, draft domain.Draft, cause error) (domain.Draft, error) {
	if s.drafts == nil {
		return draft, errors.New("no draft repository configured")
	}
	if draft.ID == "" {
		draft.ID = domain.DraftID(uuid.NewString())
		draft.CreatedAt = s.clock.Now().UTC()
	}
	draft.LastError = domain.UserMessage(cause)

	if err := s.drafts.Save(ctx, draft); err != nil {
		return draft, fmt.Errorf("save draft: %w", err)
	}
	s.logger.Info("post kept as draft", "draft_id", draft.ID)

	return draft, nil
}

func (s *PostService) checkUnauthorized(ctx context.Context, err error) {
	if s.session != nil {
		s.session.CheckUnauthorized(ctx, err)
	}
}

func submitAction(draft domain.Draft) string {
	switch {
	case draft.EditOf != nil:
		return "update post " + draft.EditOf.String()
	case draft.ParentID != nil:
		return "reply to post " + draft.ParentID.String()
	default:
		return "create post"
	}
}

func failureMessage(draft domain.Draft) string {
	switch {
	case draft.EditOf != nil:
		return "Failed to update post"
	case draft.ParentID != nil:
		return "Failed to post reply"
	default:
		return "Failed to create post"
	}
}

func successMessage(draft domain.Draft) string {
	switch {
	case draft.EditOf != nil:
		return "Post updated successfully"
	case draft.ParentID != nil:
		return "Reply posted successfully"
	default:
		return "Post created successfully"
	}
}
