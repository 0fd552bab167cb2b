package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/domain"
)

const NoRepliesMessage = "No replies yet. Be the first to reply!"

type RenderOptions struct {
	Now          time.Time
	Viewer       string
	AssetBaseURL string
}

// RenderFeed renders a pager display state as plain scrollback output.
func RenderFeed(title string, state application.DisplayState, opts RenderOptions) string {
	s := newStyles()
	lines := []string{s.title.Render(title)}
	lines = append(lines, renderState(state, opts, s, -1)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderState(state application.DisplayState, opts RenderOptions, s styles, cursor int) []string {
	switch state.Kind {
	case application.DisplayLoading:
		return []string{s.empty.Render("Loading...")}
	case application.DisplayError:
		return []string{
			s.errorText.Render("Failed to load posts: " + state.Message),
			s.hint.Render("Run `chirp feed` to go back home."),
		}
	case application.DisplayEmpty:
		return []string{s.empty.Render(state.Message)}
	}

	lines := make([]string, 0, len(state.Posts)+1)
	for i, post := range state.Posts {
		block := renderPost(post, opts, s)
		if i == cursor {
			block = s.selected.Render(block)
		}
		lines = append(lines, s.section.Render(block))
	}

	switch state.Kind {
	case application.DisplayLoadingMore:
		lines = append(lines, s.section.Render(s.empty.Render("Loading more...")))
	case application.DisplayExhausted:
		lines = append(lines, s.section.Render(s.empty.Render(state.Message)))
	}
	if state.Err != nil {
		lines = append(lines, s.errorText.Render(domain.UserMessage(state.Err)))
	}

	return lines
}

// RenderDetail renders a post followed by its replies.
func RenderDetail(detail domain.PostDetail, opts RenderOptions) string {
	s := newStyles()
	lines := []string{
		renderPost(detail.Post, opts, s),
		s.section.Render(s.header.Render(fmt.Sprintf("Replies (%d)", len(detail.Replies)))),
	}

	if len(detail.Replies) == 0 {
		lines = append(lines, s.empty.Render(NoRepliesMessage))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, reply := range detail.Replies {
		lines = append(lines, s.section.Render(s.reply.Render(renderPost(reply, opts, s))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderProfile renders a profile header and the user's posts.
func RenderProfile(profile domain.Profile, opts RenderOptions) string {
	s := newStyles()
	user := profile.User

	header := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.author.Render(displayName(user)), " ", s.handle.Render(user.Handle())),
	}
	if user.Bio != "" {
		header = append(header, s.text.Render(user.Bio))
	}
	if avatar := user.AvatarURL(opts.AssetBaseURL); avatar != "" {
		header = append(header, s.meta.Render("avatar: "+avatar))
	}
	header = append(header, s.header.Render(tweetCount(profile.Posts.Meta.Count)))
	if profile.IsOwn {
		header = append(header, s.hint.Render("Run `chirp profile edit` to update your profile."))
	}

	lines := []string{lipgloss.JoinVertical(lipgloss.Left, header...)}
	if len(profile.Posts.Posts) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render(user.Handle()+" hasn't tweeted yet")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, post := range profile.Posts.Posts {
		if post.IsDeleted {
			continue
		}
		lines = append(lines, s.section.Render(renderPost(post, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderIdentity(identity domain.Identity, opts RenderOptions) string {
	s := newStyles()
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.author.Render(displayName(identity)), " ", s.handle.Render(identity.Handle())),
	}
	if identity.Bio != "" {
		lines = append(lines, s.text.Render(identity.Bio))
	}
	if avatar := identity.AvatarURL(opts.AssetBaseURL); avatar != "" {
		lines = append(lines, s.meta.Render("avatar: "+avatar))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderDrafts(drafts []domain.Draft, opts RenderOptions) string {
	s := newStyles()
	lines := []string{s.title.Render("Drafts"), s.header.Render(fmt.Sprintf("drafts: %d", len(drafts)))}

	if len(drafts) == 0 {
		lines = append(lines, s.empty.Render("No saved drafts."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, draft := range drafts {
		kind := "post"
		switch {
		case draft.EditOf != nil:
			kind = "edit of #" + draft.EditOf.String()
		case draft.ParentID != nil:
			kind = "reply to #" + draft.ParentID.String()
		}

		block := []string{
			s.author.Render(string(draft.ID)) + " " + s.meta.Render(kind+" · "+TimeAgo(draft.CreatedAt, opts.Now)),
			s.text.Render(draft.Text),
		}
		if draft.LastError != "" {
			block = append(block, s.errorText.Render("last error: "+draft.LastError))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPost(post domain.Post, opts RenderOptions, s styles) string {
	author := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.author.Render(displayName(post.Author)),
		" ",
		s.handle.Render(post.Author.Handle()),
		s.meta.Render(" · "+TimeAgo(post.CreatedAt, opts.Now)),
	)
	if post.OwnedBy(opts.Viewer) {
		author += " " + s.own.Render("(you)")
	}

	meta := []string{s.meta.Render("#" + post.ID.String())}
	if post.ParentID != nil {
		meta = append(meta, s.meta.Render("reply to #"+post.ParentID.String()))
	}
	meta = append(meta, likeLabel(post, s))
	if n := len(domain.VisiblePosts(post.Replies)); n > 0 {
		meta = append(meta, s.meta.Render(fmt.Sprintf("%d %s", n, plural(n, "reply", "replies"))))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		author,
		s.text.Render(post.Text),
		strings.Join(meta, s.meta.Render(" · ")),
	)
}

func likeLabel(post domain.Post, s styles) string {
	if post.IsLiked {
		return s.liked.Render(fmt.Sprintf("♥ %d", post.TotalLikes))
	}

	return s.unliked.Render(fmt.Sprintf("♡ %d", post.TotalLikes))
}

func displayName(identity domain.Identity) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}

	return identity.Username
}

func tweetCount(count int) string {
	return fmt.Sprintf("%d %s", count, plural(count, "Tweet", "Tweets"))
}

// TimeAgo formats t relative to now the way post timestamps are shown.
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return t.Format("2006-01-02 15:04")
	}

	minutes := int(now.Sub(t).Minutes())
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d %s ago", minutes, plural(minutes, "minute", "minutes"))
	case minutes < 24*60:
		hours := minutes / 60
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour", "hours"))
	default:
		return t.Format("02 Jan 2006")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
