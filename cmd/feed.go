package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chirp/internal/adapters/render/feed"
	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/domain"
)

type feedJSON struct {
	Posts []domain.Post
	Meta  domain.PageMeta
}

func newFeedCmd(app *app) *cobra.Command {
	var (
		pages       int
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the home feed",
		Long:  "Show the newest posts. --pages loads that many further pages; --interactive opens the feed browser, which loads more posts as you scroll.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pages < 0 {
				return fmt.Errorf("%w: --pages must be >= 0", domain.ErrValidation)
			}
			if interactive {
				return app.open(cmd, application.DefaultPath, app.browseView(cmd), true)
			}

			return app.open(cmd, application.DefaultPath, app.feedView(cmd, pages, asJSON), true)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 0, "Additional pages to load after the first")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output posts as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive feed browser")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")

	return cmd
}

func (a *app) feedView(cmd *cobra.Command, extraPages int, asJSON bool) application.View {
	return func(ctx context.Context, req application.Request) error {
		pager, err := withSpinner(ctx, cmd.ErrOrStderr(), "Loading posts...", func(ctx context.Context) (*application.FeedPager, error) {
			pager := application.NewFeedPager(a.perPage)
			return pager, pager.Load(ctx, a.api.ListPosts, extraPages)
		})
		if errors.Is(err, domain.ErrUnauthorized) {
			return a.fetchFailed(ctx, req.Location, err)
		}
		if pager == nil {
			return err
		}

		if asJSON && err == nil {
			return writeJSON(cmd, feedJSON{Posts: pager.Posts(), Meta: pager.Meta()})
		}
		if writeErr := writeLine(cmd, feed.RenderFeed("Home", pager.Display(), a.renderOptions(req.Identity))); writeErr != nil {
			return writeErr
		}

		return err
	}
}

func (a *app) browseView(cmd *cobra.Command) application.View {
	return func(ctx context.Context, req application.Request) error {
		result, err := feed.RunBrowser(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), feed.BrowserConfig{
			Title:    "Home",
			Location: req.Location,
			Pager:    application.NewFeedPager(a.perPage),
			Fetch:    a.api.ListPosts,
			Session:  a.session,
			Likes:    a.likes,
			Posts:    a.posts,
			Toasts:   a.notifier,
			Options:  a.renderOptions(req.Identity),
		})
		if err != nil {
			return fmt.Errorf("run feed browser: %w", err)
		}
		if result.Redirect != "" {
			return &application.RedirectError{Target: result.Redirect}
		}

		return nil
	}
}
