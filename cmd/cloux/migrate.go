package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloux/config"
	"cloux/internal/repository"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger()

			store, err := repository.Open(ctx, cfg.DBDriver, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer store.Close()

			applied, err := store.Migrate(ctx, logger)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "applied", name)
			}
			return nil
		},
	}
}
