package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/chirp/internal/adapters/render/feed"
	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/domain"
)

func newDraftsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage posts kept after a failed submission",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved drafts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.draftsView(cmd)(cmd.Context(), application.Request{})
			},
		},
		&cobra.Command{
			Use:   "retry <draft-id>",
			Short: "Submit a draft again",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id := domain.DraftID(args[0])
				return app.open(cmd, draftsLocation, func(ctx context.Context, req application.Request) error {
					if err := app.posts.RetryDraft(ctx, id); err != nil {
						return mutationFailed(req.Location, err)
					}
					return nil
				}, true)
			},
		},
		&cobra.Command{
			Use:   "discard <draft-id>",
			Short: "Delete a draft without submitting it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.posts.DiscardDraft(cmd.Context(), domain.DraftID(args[0]))
			},
		},
	)

	return cmd
}

func (a *app) draftsView(cmd *cobra.Command) application.View {
	return func(ctx context.Context, req application.Request) error {
		drafts, err := a.posts.ListDrafts(ctx)
		if err != nil {
			return err
		}

		return writeLine(cmd, feed.RenderDrafts(drafts, a.renderOptions(req.Identity)))
	}
}
