package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"cloux/internal/delivery/http/helpers"
	"cloux/internal/delivery/http/middleware"
	"cloux/internal/domain"
)

// ListSignupsResponse is the success body for GET /admin/signups (200).
type ListSignupsResponse struct {
	Signups    []*domain.Signup `json:"signups"`
	TotalCount int              `json:"totalCount" example:"2"`
	Message    string           `json:"message" example:"Found 2 signups"`
}

// AdminController serves the operator endpoints. Routes are wrapped by middleware.RequireAdmin.
type AdminController struct {
	Logger  *slog.Logger
	Service domain.SignupService
}

// NewAdminController creates an AdminController with the given logger and service.
func NewAdminController(logger *slog.Logger, svc domain.SignupService) *AdminController {
	return &AdminController{Logger: logger, Service: svc}
}

// ListSignups godoc
// @Summary List signups
// @Description Returns every signup, newest first, with the total count.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListSignupsResponse
// @Failure 401 {object} helpers.ErrorResponse "Unauthorized"
// @Failure 500 {object} helpers.ErrorResponse "Failed to fetch signups"
// @Router /admin/signups [get]
func (c *AdminController) ListSignups(w http.ResponseWriter, r *http.Request) {
	listing, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "method", r.Method,
			"request_id", middleware.GetRequestID(r.Context()), "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgFetchSignupsFailed)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListSignupsResponse{
		Signups:    listing.Signups,
		TotalCount: listing.TotalCount,
		Message:    fmt.Sprintf("Found %d signups", listing.TotalCount),
	})
}
