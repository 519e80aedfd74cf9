package main

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"cloux/config"
	"cloux/internal/app"
	"cloux/internal/server"
	"cloux/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger()

			shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
				Enabled:     cfg.OTelEnabled,
				Endpoint:    cfg.OTelEndpoint,
				ServiceName: "cloux",
				Environment: cfg.Environment,
			})
			if err != nil {
				return fmt.Errorf("setup tracing: %w", err)
			}

			a, err := app.New(ctx, cfg, logger, app.Options{})
			if err != nil {
				return err
			}
			if migrate {
				if _, err := a.Store.Migrate(ctx, logger); err != nil {
					a.Close()
					return fmt.Errorf("migrate: %w", err)
				}
			}
			handler, err := a.Handler(app.Options{})
			if err != nil {
				a.Close()
				return err
			}

			srv := server.New(handler, server.Config{
				Addr:            net.JoinHostPort("", cfg.Port),
				ReadTimeout:     cfg.ReadTimeout,
				WriteTimeout:    cfg.WriteTimeout,
				ShutdownTimeout: cfg.ShutdownTimeout,
			}, logger)
			srv.OnShutdown("tracing", shutdownTracing)
			srv.OnShutdown("app", func(context.Context) error { return a.Close() })

			logger.Info("cloux starting",
				"env", cfg.Environment,
				"db_driver", cfg.DBDriver,
				"email_provider", cfg.EmailProvider,
				"rate_limit", a.Limiter != nil,
				"test_email", cfg.EnableTestEmail,
			)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")
	return cmd
}
