package domain

import (
	"fmt"
	"strconv"
	"time"
)

type PostID int64

func (id PostID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParsePostID(raw string) (PostID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid post id %q", raw)
	}

	return PostID(value), nil
}

type Post struct {
	ID         PostID
	Text       string
	Author     Identity
	TotalLikes int
	IsLiked    bool
	IsDeleted  bool
	ParentID   *PostID
	Replies    []Post
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Post) OwnedBy(username string) bool {
	return username != "" && p.Author.Username == username
}

func (p Post) IsReply() bool {
	return p.ParentID != nil
}

// WithLikeToggled flips IsLiked and adjusts TotalLikes accordingly.
func (p Post) WithLikeToggled() Post {
	if p.IsLiked {
		p.IsLiked = false
		if p.TotalLikes > 0 {
			p.TotalLikes--
		}
		return p
	}

	p.IsLiked = true
	p.TotalLikes++
	return p
}

// VisiblePosts drops soft-deleted posts while keeping order.
func VisiblePosts(posts []Post) []Post {
	visible := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.IsDeleted {
			continue
		}
		visible = append(visible, post)
	}

	return visible
}

type PageRequest struct {
	Page    int
	PerPage int
}

func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", r.Page)
	}
	if r.PerPage <= 0 {
		return fmt.Errorf("per_page must be > 0, got %d", r.PerPage)
	}

	return nil
}

type PageMeta struct {
	Page    int
	PerPage int
	MaxPage int
	Count   int
}

func (m PageMeta) HasMore() bool {
	return m.Page < m.MaxPage
}

type PostPage struct {
	Posts []Post
	Meta  PageMeta
}

type PostDetail struct {
	Post    Post
	Replies []Post
}

type Profile struct {
	User  Identity
	Posts PostPage
	IsOwn bool
}
