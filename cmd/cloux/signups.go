package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"cloux/config"
	"cloux/internal/app"
	"cloux/internal/domain"
)

func newSignupsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "signups",
		Short: "List recorded signups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a, err := app.New(ctx, cfg, config.NewLogger(), app.Options{})
			if err != nil {
				return err
			}
			defer a.Close()

			listing, err := a.Signups.List(ctx)
			if err != nil {
				return err
			}
			return printSignups(cmd.OutOrStdout(), listing, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printSignups(w io.Writer, listing *domain.SignupListing, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing.Signups)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tCREATED")
	for _, s := range listing.Signups {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Email, s.CreatedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(tw, "\nFound %d signups\n", listing.TotalCount)
	return tw.Flush()
}
