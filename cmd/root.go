package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "chirp",
		Short:         "chirp: a terminal client for the microblog API",
		Long:          "chirp logs you in to the microblog API, lets you browse the feed, post, reply, like and edit your profile from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides log.level")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		app.notifier.SetOutput(cmd.ErrOrStderr())
		if logLevel == "" {
			return nil
		}
		if err := app.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("parse --log-level: %w", err)
		}
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newFeedCmd(app),
		newPostCmd(app),
		newLikeCmd(app),
		newUnlikeCmd(app),
		newProfileCmd(app),
		newDraftsCmd(app),
	)

	return rootCmd
}
