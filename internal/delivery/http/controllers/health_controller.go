package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cloux/internal/delivery/http/helpers"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusResponse is the body of the health endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthController serves liveness and readiness probes.
type HealthController struct {
	Logger *slog.Logger
	Store  Pinger
}

func NewHealthController(logger *slog.Logger, store Pinger) *HealthController {
	return &HealthController{Logger: logger, Store: store}
}

// Healthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} controllers.StatusResponse
// @Router /healthz [get]
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz godoc
// @Summary Readiness probe
// @Description Pings the signup store.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.StatusResponse
// @Failure 503 {object} controllers.StatusResponse
// @Router /readyz [get]
func (c *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := c.Store.Ping(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "store not ready", "err", err)
		helpers.WriteJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
