package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cloux/config"
	"cloux/internal/app"
	"cloux/internal/domain"
	"cloux/internal/services"
)

func newTestEmailCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "test-email",
		Short: "Send the diagnostic email to check the sending domain",
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

			if to == "" {
				to = cfg.TestEmailFallback
			}
			if to, err = services.NormalizeEmail(to); err != nil {
				return err
			}
			id, err := a.Email.SendTestEmail(ctx, &domain.TestEmailData{
				From:   cfg.Senders().Diagnostic,
				Email:  to,
				SentAt: time.Now(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Test email sent to %s (id %s)\n", to, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient (defaults to TEST_EMAIL_FALLBACK)")
	return cmd
}
