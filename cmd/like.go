package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chirp/internal/application"
)

func newLikeCmd(app *app) *cobra.Command {
	return newLikeToggleCmd(app, "like", "Like a post", true)
}

func newUnlikeCmd(app *app) *cobra.Command {
	return newLikeToggleCmd(app, "unlike", "Remove your like from a post", false)
}

func newLikeToggleCmd(app *app, use string, short string, liked bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <post-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostIDArg(args[0])
			if err != nil {
				return err
			}

			return app.open(cmd, postLocation(id), func(ctx context.Context, req application.Request) error {
				detail, err := app.loadDetail(ctx, cmd, req.Location, id)
				if err != nil {
					return err
				}

				post := detail.Post
				if post.IsLiked != liked {
					post, err = app.likes.Toggle(ctx, post)
					if err != nil {
						return mutationFailed(req.Location, err)
					}
				}

				state := "not liked"
				if post.IsLiked {
					state = "liked"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "#%s %s · %d likes\n", post.ID, state, post.TotalLikes)
				return err
			}, true)
		},
	}
}
