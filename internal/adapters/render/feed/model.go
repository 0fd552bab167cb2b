package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chirp/internal/adapters/notify"
	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/domain"
)

var ErrUnexpectedBrowserModel = errors.New("unexpected final bubbletea model type")

const (
	nearEndThreshold = 2
	defaultVisible   = 5
	linesPerPost     = 5
)

// Toaster hands notifications to the running program instead of the terminal.
type Toaster interface {
	Redirect(sink func(notify.Toast)) (restore func())
}

type BrowserConfig struct {
	Title    string
	Location application.Location
	Pager    *application.FeedPager
	Fetch    application.PageFetcher
	Session  *application.SessionController
	Likes    *application.LikeService
	Posts    *application.PostService
	Toasts   Toaster
	Options  RenderOptions
}

// BrowserResult is how the browser ended. Redirect is set when the session
// was lost while browsing.
type BrowserResult struct {
	Redirect string
}

type mode int

const (
	modeBrowse mode = iota
	modeCompose
)

type pageLoadedMsg struct {
	load application.PageLoad
	page domain.PostPage
	err  error
}

type sessionResolvedMsg struct {
	err error
}

type likeToggledMsg struct {
	post domain.Post
	err  error
}

type postSubmittedMsg struct {
	err error
}

type postDeletedMsg struct {
	id  domain.PostID
	err error
}

type toastMsg struct {
	toast notify.Toast
}

type browserModel struct {
	ctx      context.Context
	cfg      BrowserConfig
	styles   styles
	spinner  spinner.Model
	composer textarea.Model

	mode     mode
	replyTo  *domain.PostID
	editOf   *domain.PostID
	cursor   int
	height   int
	toast    *notify.Toast
	redirect string
}

func newBrowserModel(ctx context.Context, cfg BrowserConfig) browserModel {
	s := newStyles()

	composer := textarea.New()
	composer.Placeholder = "What's happening?"
	composer.CharLimit = domain.MaxPostLength
	composer.ShowLineNumbers = false
	composer.SetHeight(4)

	if cfg.Title == "" {
		cfg.Title = "Home"
	}

	return browserModel{
		ctx:    ctx,
		cfg:    cfg,
		styles: s,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.spinner),
		),
		composer: composer,
	}
}

func (m browserModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if load, ok := m.cfg.Pager.Begin(); ok {
		cmds = append(cmds, m.fetch(load))
	}

	return tea.Batch(cmds...)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.composer.SetWidth(max(msg.Width-4, 20))
		return m, nil
	case tea.FocusMsg:
		return m, m.resolveSession()
	case sessionResolvedMsg:
		return m.afterSessionCheck()
	case pageLoadedMsg:
		return m.pageLoaded(msg)
	case likeToggledMsg:
		m.cfg.Pager.ReplacePost(msg.post)
		if msg.err != nil {
			return m.afterSessionCheck()
		}
		return m, nil
	case postSubmittedMsg:
		return m.postSubmitted(msg)
	case postDeletedMsg:
		if msg.err != nil {
			return m.afterSessionCheck()
		}
		m.cfg.Pager.RemovePost(msg.id)
		m.clampCursor()
		return m, nil
	case toastMsg:
		toast := msg.toast
		m.toast = &toast
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeCompose {
			return m.composeKey(msg)
		}
		return m.browseKey(msg)
	default:
		return m, nil
	}
}

func (m browserModel) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.cfg.Pager.Posts())-1 {
			m.cursor++
		}
		return m, m.loadMoreIfNeeded()
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "r":
		m.cursor = 0
		m.toast = nil
		return m, m.fetch(m.cfg.Pager.Refresh())
	case "l":
		post, ok := m.selected()
		if !ok || m.cfg.Likes == nil {
			return m, nil
		}
		m.cfg.Pager.ReplacePost(post.WithLikeToggled())
		return m, m.toggleLike(post)
	case "n":
		return m.startCompose(nil, nil, "")
	case "R":
		post, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := post.ID
		return m.startCompose(&id, nil, "")
	case "e":
		post, ok := m.selected()
		if !ok || !post.OwnedBy(m.cfg.Options.Viewer) {
			return m, nil
		}
		id := post.ID
		return m.startCompose(nil, &id, post.Text)
	case "d":
		post, ok := m.selected()
		if !ok || !post.OwnedBy(m.cfg.Options.Viewer) || m.cfg.Posts == nil {
			return m, nil
		}
		return m, m.deletePost(post.ID)
	default:
		return m, nil
	}
}

func (m browserModel) composeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.stopCompose()
		return m, nil
	case "ctrl+s":
		if m.cfg.Posts == nil {
			return m, nil
		}
		return m, m.submit(m.composer.Value(), m.replyTo, m.editOf)
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m browserModel) startCompose(replyTo, editOf *domain.PostID, text string) (tea.Model, tea.Cmd) {
	m.mode = modeCompose
	m.replyTo = replyTo
	m.editOf = editOf
	m.toast = nil
	m.composer.Reset()
	if text != "" {
		m.composer.SetValue(text)
	}

	return m, m.composer.Focus()
}

func (m *browserModel) stopCompose() {
	m.mode = modeBrowse
	m.replyTo = nil
	m.editOf = nil
	m.composer.Blur()
	m.composer.Reset()
}

func (m browserModel) pageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.cfg.Pager.Fail(msg.load, msg.err)
		if errors.Is(msg.err, domain.ErrUnauthorized) && m.cfg.Session != nil {
			return m, m.invalidateSession()
		}
		return m, nil
	}

	m.cfg.Pager.Complete(msg.load, msg.page)
	m.clampCursor()

	return m, m.loadMoreIfNeeded()
}

func (m browserModel) postSubmitted(msg postSubmittedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, domain.ErrValidation) {
		m.toast = &notify.Toast{Level: notify.LevelError, Message: domain.UserMessage(msg.err)}
		return m, nil
	}

	var draftErr *application.DraftSavedError
	if errors.As(msg.err, &draftErr) {
		m.toast = &notify.Toast{Level: notify.LevelInfo, Message: "Saved as draft " + string(draftErr.DraftID)}
	}

	m.stopCompose()
	if msg.err != nil {
		return m.afterSessionCheck()
	}

	m.cursor = 0
	return m, m.fetch(m.cfg.Pager.Refresh())
}

// afterSessionCheck quits with a login redirect once the session is gone.
func (m browserModel) afterSessionCheck() (tea.Model, tea.Cmd) {
	if m.cfg.Session == nil {
		return m, nil
	}

	snapshot := m.cfg.Session.Snapshot()
	if snapshot.IsLoading {
		return m, nil
	}
	if !snapshot.IsAuthenticated {
		m.redirect = application.LoginLocation(m.cfg.Location)
		return m, tea.Quit
	}
	m.cfg.Options.Viewer = snapshot.Username()

	return m, nil
}

func (m browserModel) loadMoreIfNeeded() tea.Cmd {
	if !m.cfg.Pager.NearEnd(m.cursor, nearEndThreshold) {
		return nil
	}
	load, ok := m.cfg.Pager.RequestNextPageIfNeeded()
	if !ok {
		return nil
	}

	return m.fetch(load)
}

func (m browserModel) fetch(load application.PageLoad) tea.Cmd {
	ctx, fetch := m.ctx, m.cfg.Fetch
	return func() tea.Msg {
		page, err := fetch(ctx, load.PageRequest)
		return pageLoadedMsg{load: load, page: page, err: err}
	}
}

func (m browserModel) resolveSession() tea.Cmd {
	if m.cfg.Session == nil {
		return nil
	}

	ctx, session := m.ctx, m.cfg.Session
	return func() tea.Msg {
		return sessionResolvedMsg{err: session.Resolve(ctx)}
	}
}

func (m browserModel) invalidateSession() tea.Cmd {
	ctx, session := m.ctx, m.cfg.Session
	return func() tea.Msg {
		session.Invalidate(ctx)
		return sessionResolvedMsg{}
	}
}

func (m browserModel) toggleLike(post domain.Post) tea.Cmd {
	ctx, likes := m.ctx, m.cfg.Likes
	return func() tea.Msg {
		result, err := likes.Toggle(ctx, post)
		return likeToggledMsg{post: result, err: err}
	}
}

func (m browserModel) submit(text string, replyTo, editOf *domain.PostID) tea.Cmd {
	ctx, posts := m.ctx, m.cfg.Posts
	return func() tea.Msg {
		if editOf != nil {
			return postSubmittedMsg{err: posts.Edit(ctx, *editOf, text)}
		}
		return postSubmittedMsg{err: posts.Create(ctx, text, replyTo)}
	}
}

func (m browserModel) deletePost(id domain.PostID) tea.Cmd {
	ctx, posts := m.ctx, m.cfg.Posts
	return func() tea.Msg {
		return postDeletedMsg{id: id, err: posts.Delete(ctx, id)}
	}
}

func (m browserModel) selected() (domain.Post, bool) {
	posts := m.cfg.Pager.Posts()
	if m.cursor < 0 || m.cursor >= len(posts) {
		return domain.Post{}, false
	}

	return posts[m.cursor], true
}

func (m *browserModel) clampCursor() {
	last := len(m.cfg.Pager.Posts()) - 1
	if m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browserModel) visible() int {
	if m.height <= 0 {
		return defaultVisible
	}

	return max((m.height-8)/linesPerPost, 1)
}

func (m browserModel) View() string {
	state := m.cfg.Pager.Display()

	title := m.styles.title.Render(m.cfg.Title)
	if m.cfg.Options.Viewer != "" {
		title += " " + m.styles.handle.Render("@"+m.cfg.Options.Viewer)
	}
	if state.Kind == application.DisplayLoading || state.Kind == application.DisplayLoadingMore {
		title += " " + m.spinner.View()
	}
	lines := []string{title}

	offset, cursor := 0, m.cursor
	if len(state.Posts) > 0 {
		window := m.visible()
		offset = max(m.cursor-window+1, 0)
		end := min(offset+window, len(state.Posts))
		state.Posts = state.Posts[offset:end]
		cursor = m.cursor - offset
	}
	lines = append(lines, renderState(state, m.cfg.Options, m.styles, cursor)...)

	if m.mode == modeCompose {
		lines = append(lines, m.styles.section.Render(m.styles.header.Render(m.composeLabel())), m.composer.View())
	}
	if m.toast != nil {
		lines = append(lines, m.styles.section.Render(m.renderToast(*m.toast)))
	}
	lines = append(lines, m.styles.section.Render(m.styles.hint.Render(m.help())))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m browserModel) composeLabel() string {
	switch {
	case m.editOf != nil:
		return "Edit post #" + m.editOf.String()
	case m.replyTo != nil:
		return "Reply to #" + m.replyTo.String()
	default:
		return "New post"
	}
}

func (m browserModel) renderToast(toast notify.Toast) string {
	switch toast.Level {
	case notify.LevelError:
		return m.styles.errorText.Render(toast.Message)
	case notify.LevelSuccess:
		return m.styles.liked.Render(toast.Message)
	default:
		return m.styles.meta.Render(toast.Message)
	}
}

func (m browserModel) help() string {
	if m.mode == modeCompose {
		return fmt.Sprintf("ctrl+s post · esc cancel · %d/%d", len([]rune(strings.TrimSpace(m.composer.Value()))), domain.MaxPostLength)
	}

	return "j/k move · l like · n new · R reply · e edit · d delete · r refresh · q quit"
}

// RunBrowser runs the interactive feed until the user quits or the session
// is lost. Focus events re-check the stored session.
func RunBrowser(ctx context.Context, in io.Reader, out io.Writer, cfg BrowserConfig) (BrowserResult, error) {
	p := tea.NewProgram(
		newBrowserModel(ctx, cfg),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	if cfg.Toasts != nil {
		restore := cfg.Toasts.Redirect(func(toast notify.Toast) {
			p.Send(toastMsg{toast: toast})
		})
		defer restore()
	}

	finalModel, err := p.Run()
	if err != nil {
		return BrowserResult{}, err
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return BrowserResult{}, ErrUnexpectedBrowserModel
	}

	return BrowserResult{Redirect: result.redirect}, nil
}
