package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chirp/internal/adapters/render/feed"
	"github.com/bnema/chirp/internal/application"
	"github.com/bnema/chirp/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		username string
		password string
		redirect string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Long:  "Log in with username and password. The password is read from the first line of stdin when --password is not set. With --redirect the given location is shown after login.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readSecretLine(cmd, password)
			if err != nil {
				return err
			}

			view := func(ctx context.Context, req application.Request) error {
				if _, err := app.auth.Login(ctx, domain.LoginForm{Username: username, Password: secret}); err != nil {
					return err
				}
				if target := req.Location.RedirectTarget(); target != "" {
					return &application.RedirectError{Target: target}
				}
				return nil
			}

			target := application.LoginPath
			if redirect != "" {
				target = application.LoginLocation(application.Location{Path: redirect})
			}

			return app.open(cmd, target, view, false)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (read from stdin when empty)")
	cmd.Flags().StringVar(&redirect, "redirect", "", "Location to open after login, e.g. /post/12")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var (
		name     string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := readSecretLine(cmd, password)
			if err != nil {
				return err
			}

			view := func(ctx context.Context, _ application.Request) error {
				form := domain.RegisterForm{Name: name, Username: username, Password: secret}
				if err := app.auth.Register(ctx, form); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Run `chirp login -u %s` to sign in.\n", username)
				return err
			}

			return app.open(cmd, "/register", view, false)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password (read from stdin when empty)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.auth.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.navigator(cmd).Navigate(cmd.Context(), meLocation)
		},
	}
}

func (a *app) whoamiView(cmd *cobra.Command) application.View {
	return func(_ context.Context, req application.Request) error {
		if req.Identity == nil {
			return domain.ErrLoginRequired
		}

		return writeLine(cmd, feed.RenderIdentity(*req.Identity, a.renderOptions(req.Identity)))
	}
}
