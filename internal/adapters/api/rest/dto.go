package rest

import (
	"strings"
	"time"

	"github.com/bnema/chirp/internal/domain"
)

type envelope[T any] struct {
	Data T        `json:"data"`
	Meta metaJSON `json:"meta"`
}

type errorJSON struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type metaJSON struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	MaxPage int `json:"max_page"`
	Count   int `json:"count"`
}

type tokenJSON struct {
	Token string `json:"token"`
}

type userJSON struct {
	ID       flexibleID `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Bio      *string    `json:"bio"`
	ImageURL *string    `json:"image_url"`
}

type postJSON struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	User       userJSON   `json:"user"`
	TotalLikes int        `json:"total_likes"`
	IsLiked    bool       `json:"is_liked"`
	IsDeleted  bool       `json:"is_deleted"`
	ParentID   *int64     `json:"parent_id"`
	Replies    []postJSON `json:"replies"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type postRequest struct {
	Text     string `json:"text"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// flexibleID accepts both numeric and string identifiers.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	*id = flexibleID(strings.Trim(raw, `"`))
	return nil
}

func (u userJSON) toDomain() domain.Identity {
	identity := domain.Identity{
		ID:       string(u.ID),
		Name:     u.Name,
		Username: u.Username,
	}
	if u.Bio != nil {
		identity.Bio = *u.Bio
	}
	if u.ImageURL != nil {
		identity.ImageURL = *u.ImageURL
	}

	return identity
}

func (p postJSON) toDomain() domain.Post {
	post := domain.Post{
		ID:         domain.PostID(p.ID),
		Text:       p.Text,
		Author:     p.User.toDomain(),
		TotalLikes: p.TotalLikes,
		IsLiked:    p.IsLiked,
		IsDeleted:  p.IsDeleted,
		CreatedAt:  parseTimestamp(p.CreatedAt),
		UpdatedAt:  parseTimestamp(p.UpdatedAt),
	}
	if p.ParentID != nil {
		parent := domain.PostID(*p.ParentID)
		post.ParentID = &parent
	}
	if len(p.Replies) > 0 {
		post.Replies = postsToDomain(p.Replies)
	}

	return post
}

func postsToDomain(posts []postJSON) []domain.Post {
	converted := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		converted = append(converted, post.toDomain())
	}

	return converted
}

func (m metaJSON) toDomain() domain.PageMeta {
	return domain.PageMeta{Page: m.Page, PerPage: m.PerPage, MaxPage: m.MaxPage, Count: m.Count}
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
