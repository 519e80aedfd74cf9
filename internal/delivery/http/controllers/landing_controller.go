package controllers

import (
	"log/slog"
	"net/http"

	"cloux/internal/delivery/http/middleware"
	"cloux/internal/view"
)

// LandingController renders the public marketing page.
type LandingController struct {
	Logger  *slog.Logger
	Content view.Landing
}

func NewLandingController(logger *slog.Logger, content view.Landing) *LandingController {
	return &LandingController{Logger: logger, Content: content}
}

// Home renders the landing page.
func (c *LandingController) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.LandingPage(c.Content).Render(r.Context(), w); err != nil {
		c.Logger.ErrorContext(r.Context(), "render landing page", "request_id", middleware.GetRequestID(r.Context()), "err", err)
	}
}

// NotFound renders the 404 page for unknown paths.
func (c *LandingController) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := view.NotFoundPage().Render(r.Context(), w); err != nil {
		c.Logger.ErrorContext(r.Context(), "render not found page", "err", err)
	}
}
