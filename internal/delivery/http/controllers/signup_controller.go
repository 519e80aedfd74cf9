package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"cloux/internal/delivery/http/helpers"
	"cloux/internal/delivery/http/middleware"
	"cloux/internal/domain"
)

// SignupRequest is the request body for POST /signup
type SignupRequest struct {
	Email string `json:"email" example:"jane@clinic.example"`
}

// SignupResponse is the success body for POST /signup (200).
type SignupResponse struct {
	Message      string `json:"message" example:"Signup successful"`
	TotalSignups int    `json:"totalSignups" example:"42"`
}

// SignupController handles pilot-program registrations.
type SignupController struct {
	Logger  *slog.Logger
	Service domain.SignupService
}

// NewSignupController creates a SignupController with the given logger and service.
func NewSignupController(logger *slog.Logger, svc domain.SignupService) *SignupController {
	return &SignupController{
		Logger:  logger,
		Service: svc,
	}
}

// Signup godoc
// @Summary Register for the pilot program
// @Description Records the email once, sends a confirmation to the applicant and, when configured, a notification to the operator. Notification failures do not fail the request.
// @Tags signup
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Applicant email"
// @Success 200 {object} controllers.SignupResponse
// @Failure 400 {object} helpers.ErrorResponse "Invalid email format | Email already registered"
// @Failure 429 {object} helpers.ErrorResponse "Too many requests"
// @Failure 500 {object} helpers.ErrorResponse "Something went wrong. Please try again."
// @Router /signup [post]
func (c *SignupController) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := helpers.DecodeJSON(r, &req, false); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgInvalidEmail)
		return
	}

	result, err := c.Service.Register(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgInvalidEmail)
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgDuplicateEmail)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed",
				"path", r.URL.Path, "method", r.Method,
				"request_id", middleware.GetRequestID(r.Context()), "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgSignupFailed)
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, SignupResponse{
		Message:      "Signup successful",
		TotalSignups: result.TotalSignups,
	})
}
