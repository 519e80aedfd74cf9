package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cloux",
		Short: "Cloux landing page and pilot-program signup service",
		Long: `cloux serves the marketing landing page together with the signup intake
and admin listing endpoints.

Configuration is read from the environment (and a .env file outside production).`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newTestEmailCmd(),
		newSignupsCmd(),
	)
	return root
}
