// Package app assembles the signup service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"cloux/config"
	"cloux/internal/adapters/auth"
	"cloux/internal/adapters/email"
	"cloux/internal/adapters/ratelimit"
	deliveryhttp "cloux/internal/delivery/http"
	"cloux/internal/delivery/http/controllers"
	"cloux/internal/domain"
	"cloux/internal/repository"
	"cloux/internal/services"
	"cloux/internal/view"
)

// App holds the wired collaborators. Close releases the store and Redis client.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   *repository.Store
	Email   domain.EmailService
	Signups domain.SignupService
	Limiter domain.RateLimiter

	redis *redis.Client
}

// Options adjust wiring for callers other than the HTTP server.
type Options struct {
	// Mailer replaces the configured email provider.
	Mailer domain.Mailer
	// BcryptCost overrides the admin secret digest cost.
	BcryptCost int
}

// New opens the store and builds the services described by cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	store, err := repository.Open(ctx, cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a := &App{Config: cfg, Logger: logger, Store: store}

	mailer := opts.Mailer
	if mailer == nil {
		mailer, err = email.NewMailer(email.MailerConfig{
			Provider:     cfg.EmailProvider,
			ResendAPIKey: cfg.ResendAPIKey,
			SES: email.SESConfig{
				Region:             cfg.AWSRegion,
				AccessKeyID:        cfg.AWSAccessKeyID,
				SecretAccessKey:    cfg.AWSSecretAccessKey,
				InsecureSkipVerify: cfg.SESInsecureSkip,
			},
		}, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("create mailer: %w", err)
		}
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load email templates: %w", err)
	}
	a.Email = services.NewEmailService(mailer, renderer, logger)
	a.Signups = services.NewSignupService(store.Signups, a.Email, services.SignupServiceConfig{
		Senders:            cfg.Senders(),
		OperatorEmail:      cfg.OperatorEmail,
		UnsubscribeAddress: cfg.UnsubscribeAddress,
	}, logger)

	if cfg.RedisURL != "" {
		client, err := ratelimit.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.redis = client
		a.Limiter = ratelimit.NewRedisLimiter(client, cfg.SignupRateLimitRPS, cfg.SignupRateLimitBurst)
	}
	return a, nil
}

// Handler builds the HTTP handler. The admin secret digest is computed here.
func (a *App) Handler(opts Options) (http.Handler, error) {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	verifier, err := auth.NewSecretVerifier(a.Config.AdminSecret, cost)
	if err != nil {
		return nil, err
	}
	if a.Config.AdminSecret == "" {
		a.Logger.Warn("ADMIN_SECRET is not set; admin endpoints will reject every request")
	}

	rc := deliveryhttp.RouterConfig{
		Logger:        a.Logger,
		Signup:        controllers.NewSignupController(a.Logger, a.Signups),
		Admin:         controllers.NewAdminController(a.Logger, a.Signups),
		Health:        controllers.NewHealthController(a.Logger, a.Store.Signups),
		Landing:       controllers.NewLandingController(a.Logger, view.DefaultLanding(time.Now().Year())),
		AdminVerifier: verifier,
		SignupLimiter: a.Limiter,
		CORSOrigins:   a.Config.CORSOrigins(),
	}
	if a.Config.EnableTestEmail {
		rc.TestEmail = controllers.NewTestEmailController(a.Logger, a.Email, a.Config.Senders().Diagnostic, a.Config.TestEmailFallback)
	}
	return deliveryhttp.NewRouter(rc), nil
}

// Close releases the store and the Redis client.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}
