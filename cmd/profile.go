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

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit profiles",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileEditCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "show [username]",
		Short: "Show a user's profile and posts (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := profileLocation
			if len(args) == 1 {
				target = "/user/" + args[0]
			}

			return app.open(cmd, target, app.profileView(cmd, pages), true)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 0, "Additional pages of posts to load")

	return cmd
}

func (a *app) profileView(cmd *cobra.Command, extraPages int) application.View {
	return func(ctx context.Context, req application.Request) error {
		username := req.Params["username"]
		if username == "" && req.Identity != nil {
			username = req.Identity.Username
		}

		view, err := withSpinner(ctx, cmd.ErrOrStderr(), "Loading profile...", func(ctx context.Context) (application.ProfileView, error) {
			return a.profiles.Show(ctx, username, extraPages)
		})
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("user %s not found: %w", username, err)
		case err != nil:
			return a.fetchFailed(ctx, req.Location, err)
		}

		return writeLine(cmd, feed.RenderProfile(view.Profile(), a.renderOptions(req.Identity)))
	}
}

func newProfileEditCmd(app *app) *cobra.Command {
	var (
		name  string
		bio   string
		image string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update your name, bio or avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.open(cmd, profileLocation, func(ctx context.Context, req application.Request) error {
				form := domain.ProfileForm{Name: req.Identity.Name, Bio: req.Identity.Bio, ImagePath: image}
				if cmd.Flags().Changed("name") {
					form.Name = name
				}
				if cmd.Flags().Changed("bio") {
					form.Bio = bio
				}

				identity, err := app.profiles.Update(ctx, form)
				if err != nil {
					return mutationFailed(req.Location, err)
				}

				return writeLine(cmd, feed.RenderIdentity(identity, app.renderOptions(&identity)))
			}, true)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Bio")
	cmd.Flags().StringVar(&image, "image", "", "Path to a new avatar image")

	return cmd
}
