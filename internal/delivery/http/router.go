package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "cloux/docs"
	"cloux/internal/delivery/http/controllers"
	"cloux/internal/delivery/http/middleware"
	"cloux/internal/domain"
	"cloux/internal/view"
)

// RouterConfig wires controllers and cross-cutting collaborators into the router.
type RouterConfig struct {
	Logger    *slog.Logger
	Signup    *controllers.SignupController
	Admin     *controllers.AdminController
	Health    *controllers.HealthController
	Landing   *controllers.LandingController
	TestEmail *controllers.TestEmailController // nil leaves POST /test-email unregistered

	AdminVerifier domain.SecretVerifier
	SignupLimiter domain.RateLimiter // nil disables rate limiting
	CORSOrigins   []string
}

// NewRouter initializes the HTTP router with all application routes and the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(cfg.AdminVerifier, cfg.Logger)
	rateLimit := middleware.RateLimitIP(cfg.SignupLimiter, cfg.Logger)

	// API Routes
	mux.HandleFunc("POST /signup", rateLimit(cfg.Signup.Signup))
	mux.HandleFunc("GET /admin/signups", requireAdmin(cfg.Admin.ListSignups))
	if cfg.TestEmail != nil {
		mux.HandleFunc("POST /test-email", cfg.TestEmail.SendTestEmail)
	}

	// Probes
	mux.HandleFunc("GET /healthz", cfg.Health.Healthz)
	mux.HandleFunc("GET /readyz", cfg.Health.Readyz)

	// Landing page
	mux.HandleFunc("GET /{$}", cfg.Landing.Home)
	mux.Handle("GET /static/", view.StaticHandler("/static/"))
	mux.HandleFunc("/", cfg.Landing.NotFound)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.CORS(cfg.CORSOrigins, h)
	h = middleware.Logging(cfg.Logger, h)
	h = middleware.Recoverer(cfg.Logger)(h)
	h = middleware.RequestID(h)
	return h
}
