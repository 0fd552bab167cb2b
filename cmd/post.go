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

func newPostCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, show, edit and delete posts",
	}

	cmd.AddCommand(
		newPostCreateCmd(app),
		newPostShowCmd(app),
		newPostEditCmd(app),
		newPostDeleteCmd(app),
	)

	return cmd
}

func newPostCreateCmd(app *app) *cobra.Command {
	var replyTo string

	cmd := &cobra.Command{
		Use:   "create [text...]",
		Short: "Publish a post, or a reply with --reply-to",
		Long:  "Publish a post. The text is read from stdin when no arguments are given. A failed submission is kept as a draft (see `chirp drafts`).",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			target := application.DefaultPath
			var parentID *domain.PostID
			if replyTo != "" {
				id, err := parsePostIDArg(replyTo)
				if err != nil {
					return err
				}
				parentID = &id
				target = postLocation(id)
			}

			return app.open(cmd, target, func(ctx context.Context, req application.Request) error {
				if err := app.posts.Create(ctx, text, parentID); err != nil {
					return mutationFailed(req.Location, err)
				}
				return nil
			}, true)
		},
	}

	cmd.Flags().StringVar(&replyTo, "reply-to", "", "ID of the post to reply to")

	return cmd
}

func newPostEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <post-id> [text...]",
		Short: "Replace the text of one of your posts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostIDArg(args[0])
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[1:])
			if err != nil {
				return err
			}

			return app.open(cmd, postLocation(id), func(ctx context.Context, req application.Request) error {
				if err := app.posts.Edit(ctx, id, text); err != nil {
					return mutationFailed(req.Location, err)
				}
				return nil
			}, true)
		},
	}
}

func newPostDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostIDArg(args[0])
			if err != nil {
				return err
			}

			return app.open(cmd, postLocation(id), func(ctx context.Context, req application.Request) error {
				if err := app.posts.Delete(ctx, id); err != nil {
					return mutationFailed(req.Location, err)
				}
				return nil
			}, true)
		},
	}
}

func newPostShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post and its replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostIDArg(args[0])
			if err != nil {
				return err
			}

			return app.navigator(cmd).Navigate(cmd.Context(), postLocation(id))
		},
	}
}

func (a *app) postDetailView(cmd *cobra.Command) application.View {
	return func(ctx context.Context, req application.Request) error {
		id, err := parsePostIDArg(req.Params["id"])
		if err != nil {
			return err
		}

		detail, err := a.loadDetail(ctx, cmd, req.Location, id)
		if err != nil {
			return err
		}

		return writeLine(cmd, feed.RenderDetail(detail, a.renderOptions(req.Identity)))
	}
}

func (a *app) loadDetail(ctx context.Context, cmd *cobra.Command, loc application.Location, id domain.PostID) (domain.PostDetail, error) {
	detail, err := withSpinner(ctx, cmd.ErrOrStderr(), "Loading post...", func(ctx context.Context) (domain.PostDetail, error) {
		return a.posts.Detail(ctx, id)
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.PostDetail{}, fmt.Errorf("post %s not found: %w", id, err)
	case err != nil:
		return domain.PostDetail{}, a.fetchFailed(ctx, loc, err)
	}

	return detail, nil
}
