package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/bnema/chirp/internal/domain"
)

const (
	LoginPath     = "/login"
	DefaultPath   = "/"
	RedirectParam = "redirect"

	maxRedirects = 4
)

var (
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrRouteNotFound    = errors.New("no view for path")
	ErrSessionLoading   = errors.New("session is still loading")
)

type Location struct {
	Path  string
	Query url.Values
}

func ParseLocation(raw string) (Location, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Location{}, fmt.Errorf("parse location %q: %w", raw, err)
	}

	path := parsed.Path
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return Location{Path: path, Query: parsed.Query()}, nil
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}

	return l.Path + "?" + l.Query.Encode()
}

// RedirectTarget is the "redirect" query parameter, if any.
func (l Location) RedirectTarget() string {
	if l.Query == nil {
		return ""
	}

	return l.Query.Get(RedirectParam)
}

// LoginLocation is the login view carrying from as its return target.
func LoginLocation(from Location) string {
	return LoginPath + "?" + RedirectParam + "=" + from.Path
}

type DecisionKind string

const (
	DecisionLoading  DecisionKind = "loading"
	DecisionRender   DecisionKind = "render"
	DecisionRedirect DecisionKind = "redirect"
)

type Decision struct {
	Kind   DecisionKind
	Target string
}

// Decide maps a session snapshot and the requested location to what a
// guarded view must do. requireAuth=false marks a public-only view.
func Decide(session domain.Session, loc Location, requireAuth bool) Decision {
	if session.IsLoading {
		return Decision{Kind: DecisionLoading}
	}

	if !session.IsAuthenticated {
		if requireAuth {
			return Decision{Kind: DecisionRedirect, Target: LoginLocation(loc)}
		}
		return Decision{Kind: DecisionRender}
	}

	if loc.Path == LoginPath {
		if session.User == nil {
			return Decision{Kind: DecisionLoading}
		}
		target := loc.RedirectTarget()
		if target == "" || target == LoginPath {
			target = DefaultPath
		}
		return Decision{Kind: DecisionRedirect, Target: target}
	}

	if !requireAuth {
		return Decision{Kind: DecisionRedirect, Target: DefaultPath}
	}

	if session.User == nil {
		return Decision{Kind: DecisionLoading}
	}

	return Decision{Kind: DecisionRender}
}

type Request struct {
	Location Location
	Params   map[string]string
	Identity *domain.Identity
}

type View func(ctx context.Context, req Request) error

// RedirectError asks the navigator to continue at Target.
type RedirectError struct {
	Target string
}

func (e *RedirectError) Error() string {
	return "redirect to " + e.Target
}

type Guard struct {
	session *SessionController
	logger  *slog.Logger
}

func NewGuard(session *SessionController, logger *slog.Logger) *Guard {
	return &Guard{session: session, logger: loggerOrDiscard(logger)}
}

// Wrap decorates view with the session check. The session is resolved the
// first time any guarded view mounts.
func (g *Guard) Wrap(view View, requireAuth bool) View {
	return func(ctx context.Context, req Request) error {
		if g.session.State() == domain.SessionInitializing {
			if err := g.session.Resolve(ctx); err != nil {
				g.logger.Debug("session resolution failed", "error", err)
			}
		}

		decision := Decide(g.session.Snapshot(), req.Location, requireAuth)
		g.logger.Debug("guard decision", "path", req.Location.Path, "require_auth", requireAuth, "decision", decision.Kind, "target", decision.Target)

		switch decision.Kind {
		case DecisionRedirect:
			return &RedirectError{Target: decision.Target}
		case DecisionLoading:
			return ErrSessionLoading
		default:
			req.Identity = g.session.Snapshot().User
			return view(ctx, req)
		}
	}
}

type route struct {
	segments []string
	view     View
}

// Navigator renders views by path and follows redirects between them.
type Navigator struct {
	routes []route
	logger *slog.Logger
}

func NewNavigator(logger *slog.Logger) *Navigator {
	return &Navigator{logger: loggerOrDiscard(logger)}
}

// Handle registers view for pattern. Segments written as {name} capture params.
func (n *Navigator) Handle(pattern string, view View) {
	n.routes = append(n.routes, route{segments: splitPath(pattern), view: view})
}

func (n *Navigator) Navigate(ctx context.Context, target string) error {
	return n.Open(ctx, target, nil)
}

// Open renders view at target, or the registered view when view is nil.
// Redirects are always resolved through registered routes.
func (n *Navigator) Open(ctx context.Context, target string, view View) error {
	for hop := 0; hop <= maxRedirects; hop++ {
		loc, err := ParseLocation(target)
		if err != nil {
			return err
		}

		current := view
		params := map[string]string{}
		if current == nil {
			current, params = n.match(loc.Path)
			if current == nil {
				return fmt.Errorf("%w: %s", ErrRouteNotFound, loc.Path)
			}
		}

		err = current(ctx, Request{Location: loc, Params: params})
		var redirect *RedirectError
		if !errors.As(err, &redirect) {
			return err
		}

		n.logger.Debug("redirect", "from", loc.String(), "to", redirect.Target)
		target = redirect.Target
		view = nil
	}

	return fmt.Errorf("%w: last target %s", ErrTooManyRedirects, target)
}

func (n *Navigator) match(path string) (View, map[string]string) {
	segments := splitPath(path)
	for _, r := range n.routes {
		if len(r.segments) != len(segments) {
			continue
		}

		params := map[string]string{}
		matched := true
		for i, segment := range r.segments {
			if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
				params[strings.Trim(segment, "{}")] = segments[i]
				continue
			}
			if segment != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return r.view, params
		}
	}

	return nil, nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}

	return strings.Split(trimmed, "/")
}
