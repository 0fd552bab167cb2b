package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/chirp/internal/domain"
)

const (
	EmptyFeedMessage     = "No posts yet"
	ExhaustedFeedMessage = "No more posts to load"
)

// PageLoad is an issued page fetch. Generation ties it to the refresh that
// produced it so late answers from an older generation can be dropped.
type PageLoad struct {
	domain.PageRequest
	Generation int
}

type PageFetcher func(ctx context.Context, req domain.PageRequest) (domain.PostPage, error)

type DisplayKind string

const (
	DisplayLoading     DisplayKind = "loading"
	DisplayError       DisplayKind = "error"
	DisplayEmpty       DisplayKind = "empty"
	DisplayItems       DisplayKind = "items"
	DisplayLoadingMore DisplayKind = "loading_more"
	DisplayExhausted   DisplayKind = "exhausted"
)

type DisplayState struct {
	Kind    DisplayKind
	Posts   []domain.Post
	Err     error
	Message string
}

// FeedPager accumulates consecutive pages of a paginated post listing into
// one ordered list without duplicate IDs. Page 1 always replaces the list.
type FeedPager struct {
	mu sync.Mutex

	perPage    int
	page       int
	maxPage    int
	count      int
	posts      []domain.Post
	seen       map[domain.PostID]struct{}
	err        error
	generation int
	inflight   map[int]struct{}
	pending    map[int]domain.PostPage
}

func NewFeedPager(perPage int) *FeedPager {
	if perPage <= 0 {
		perPage = 10
	}

	return &FeedPager{
		perPage:  perPage,
		seen:     map[domain.PostID]struct{}{},
		inflight: map[int]struct{}{},
		pending:  map[int]domain.PostPage{},
	}
}

// LoadPage marks page as requested for the current generation.
func (p *FeedPager) LoadPage(page int) PageLoad {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.loadLocked(page)
}

// Begin issues the first page fetch unless one is already loaded or in flight.
func (p *FeedPager) Begin() (PageLoad, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.page > 0 || len(p.inflight) > 0 {
		return PageLoad{}, false
	}

	return p.loadLocked(1), true
}

// Refresh restarts from page 1. Responses for loads issued before the refresh
// are discarded when they complete.
func (p *FeedPager) Refresh() PageLoad {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.inflight = map[int]struct{}{}
	p.pending = map[int]domain.PostPage{}
	p.err = nil

	return p.loadLocked(1)
}

// RequestNextPageIfNeeded issues the fetch for page+1 when nothing is in
// flight and the server reported more pages.
func (p *FeedPager) RequestNextPageIfNeeded() (PageLoad, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.inflight) > 0 || p.page == 0 || p.page >= p.maxPage {
		return PageLoad{}, false
	}

	return p.loadLocked(p.page + 1), true
}

// Complete merges a fetched page. It reports false when the result was
// dropped as stale or redundant.
func (p *FeedPager) Complete(load PageLoad, result domain.PostPage) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if load.Generation != p.generation {
		return false
	}
	delete(p.inflight, load.Page)

	switch {
	case load.Page == 1:
		p.replaceLocked(result)
	case load.Page == p.page+1:
		p.appendLocked(result)
	case load.Page > p.page+1:
		p.pending[load.Page] = result
		return true
	default:
		return false
	}

	p.err = nil
	p.drainLocked()
	return true
}

// Fail records a fetch error for load. Already merged posts are kept.
func (p *FeedPager) Fail(load PageLoad, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if load.Generation != p.generation {
		return false
	}
	delete(p.inflight, load.Page)
	p.err = err

	return true
}

// Load fetches the first page, then up to extraPages further pages, using fetch
// synchronously.
func (p *FeedPager) Load(ctx context.Context, fetch PageFetcher, extraPages int) error {
	load, ok := p.Begin()
	if !ok {
		load = p.Refresh()
	}

	for {
		if err := ctx.Err(); err != nil {
			p.Fail(load, err)
			return err
		}

		result, err := fetch(ctx, load.PageRequest)
		if err != nil {
			p.Fail(load, err)
			return fmt.Errorf("load page %d: %w", load.Page, err)
		}
		p.Complete(load, result)

		if extraPages <= 0 {
			return nil
		}
		extraPages--

		next, ok := p.RequestNextPageIfNeeded()
		if !ok {
			return nil
		}
		load = next
	}
}

func (p *FeedPager) Display() DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()

	loading := len(p.inflight) > 0
	posts := append([]domain.Post(nil), p.posts...)

	if len(posts) == 0 {
		switch {
		case loading || (p.page == 0 && p.err == nil):
			return DisplayState{Kind: DisplayLoading}
		case p.err != nil:
			return DisplayState{Kind: DisplayError, Err: p.err, Message: domain.UserMessage(p.err)}
		default:
			return DisplayState{Kind: DisplayEmpty, Message: EmptyFeedMessage}
		}
	}

	state := DisplayState{Kind: DisplayItems, Posts: posts, Err: p.err}
	switch {
	case loading:
		state.Kind = DisplayLoadingMore
	case p.page >= p.maxPage:
		state.Kind = DisplayExhausted
		state.Message = ExhaustedFeedMessage
	}

	return state
}

func (p *FeedPager) Posts() []domain.Post {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.Post(nil), p.posts...)
}

func (p *FeedPager) Meta() domain.PageMeta {
	p.mu.Lock()
	defer p.mu.Unlock()

	return domain.PageMeta{Page: p.page, PerPage: p.perPage, MaxPage: p.maxPage, Count: p.count}
}

func (p *FeedPager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.inflight) > 0
}

func (p *FeedPager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

// NearEnd reports whether index is within threshold items of the last post.
func (p *FeedPager) NearEnd(index, threshold int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.posts) > 0 && index >= len(p.posts)-1-threshold
}

// ReplacePost swaps the post with the same ID, keeping its position.
func (p *FeedPager) ReplacePost(post domain.Post) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.posts {
		if p.posts[i].ID == post.ID {
			p.posts[i] = post
			return true
		}
	}

	return false
}

func (p *FeedPager) RemovePost(id domain.PostID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.posts {
		if p.posts[i].ID != id {
			continue
		}
		p.posts = append(p.posts[:i], p.posts[i+1:]...)
		if p.count > 0 {
			p.count--
		}
		return true
	}

	return false
}

func (p *FeedPager) loadLocked(page int) PageLoad {
	if page < 1 {
		page = 1
	}
	p.inflight[page] = struct{}{}

	return PageLoad{
		PageRequest: domain.PageRequest{Page: page, PerPage: p.perPage},
		Generation:  p.generation,
	}
}

func (p *FeedPager) replaceLocked(result domain.PostPage) {
	p.posts = make([]domain.Post, 0, len(result.Posts))
	p.seen = make(map[domain.PostID]struct{}, len(result.Posts))
	p.page = 0
	p.appendLocked(result)
	p.page = 1
}

func (p *FeedPager) appendLocked(result domain.PostPage) {
	for _, post := range result.Posts {
		if _, ok := p.seen[post.ID]; ok {
			continue
		}
		p.seen[post.ID] = struct{}{}
		p.posts = append(p.posts, post)
	}

	p.page++
	p.maxPage = result.Meta.MaxPage
	p.count = result.Meta.Count
}

func (p *FeedPager) drainLocked() {
	pages := make([]int, 0, len(p.pending))
	for page := range p.pending {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	for _, page := range pages {
		if page <= p.page {
			delete(p.pending, page)
			continue
		}
		if page != p.page+1 {
			return
		}
		p.appendLocked(p.pending[page])
		delete(p.pending, page)
	}
}
