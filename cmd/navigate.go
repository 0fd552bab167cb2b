package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/chirp/internal/adapters/render/feed"
	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/domain"
)

const (
	meLocation      = "/me"
	profileLocation = "/profile"
	draftsLocation  = "/drafts"

	maxStdinText = 64 << 10
)

// navigator registers every location a redirect can land on. Views write to
// cmd's output streams.
func (a *app) navigator(cmd *cobra.Command) *application.Navigator {
	nav := application.NewNavigator(a.logger.With("component", "navigator"))

	nav.Handle(application.DefaultPath, a.guard.Wrap(a.feedView(cmd, 0, false), true))
	nav.Handle(application.LoginPath, a.guard.Wrap(loginRequiredView, false))
	nav.Handle(meLocation, a.guard.Wrap(a.whoamiView(cmd), true))
	nav.Handle("/post/{id}", a.guard.Wrap(a.postDetailView(cmd), true))
	nav.Handle(profileLocation, a.guard.Wrap(a.profileView(cmd, 0), true))
	nav.Handle("/user/{username}", a.guard.Wrap(a.profileView(cmd, 0), true))
	nav.Handle(draftsLocation, a.guard.Wrap(a.draftsView(cmd), true))

	return nav
}

// open renders view at target behind the session guard. requireAuth=false
// marks a public-only view.
func (a *app) open(cmd *cobra.Command, target string, view application.View, requireAuth bool) error {
	return a.navigator(cmd).Open(cmd.Context(), target, a.guard.Wrap(view, requireAuth))
}

func (a *app) renderOptions(identity *domain.Identity) feed.RenderOptions {
	opts := feed.RenderOptions{Now: a.now(), AssetBaseURL: a.assetBaseURL}
	if identity != nil {
		opts.Viewer = identity.Username
	}

	return opts
}

// fetchFailed sends the user to the login view when the server rejected the
// session token.
func (a *app) fetchFailed(ctx context.Context, loc application.Location, err error) error {
	if !errors.Is(err, domain.ErrUnauthorized) {
		return err
	}

	a.session.Invalidate(ctx)
	return &application.RedirectError{Target: application.LoginLocation(loc)}
}

// mutationFailed keeps err visible and adds the login hint when the
// mutation was rejected for an expired session.
func mutationFailed(loc application.Location, err error) error {
	if !errors.Is(err, domain.ErrUnauthorized) {
		return err
	}

	return fmt.Errorf("%w: run `%s`: %w", domain.ErrLoginRequired, loginHint(loc.Path), err)
}

func loginRequiredView(_ context.Context, req application.Request) error {
	return fmt.Errorf("%w: run `%s`", domain.ErrLoginRequired, loginHint(req.Location.RedirectTarget()))
}

func loginHint(target string) string {
	if target == "" || target == application.LoginPath || target == application.DefaultPath {
		return "chirp login"
	}

	return "chirp login --redirect " + target
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeLine(cmd *cobra.Command, rendered string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// readText joins args, or reads stdin when no args are given.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxStdinText))
	if err != nil {
		return "", fmt.Errorf("read text from stdin: %w", err)
	}

	return string(data), nil
}

// readSecretLine returns value, or the first line of stdin when value is empty.
func readSecretLine(cmd *cobra.Command, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func parsePostIDArg(raw string) (domain.PostID, error) {
	id, err := domain.ParsePostID(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	return id, nil
}

func postLocation(id domain.PostID) string {
	return "/post/" + id.String()
}
