package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloux/internal/delivery/http/helpers"
	"cloux/internal/delivery/http/middleware"
	"cloux/internal/domain"
	"cloux/internal/services"
)

// TestEmailRequest is the optional request body for POST /test-email
type TestEmailRequest struct {
	Email string `json:"email" example:"team@cloux.co"`
}

// TestEmailResponse is the success body for POST /test-email (200).
type TestEmailResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Test email sent to team@cloux.co!"`
	EmailID string `json:"emailId" example:"4ef9a417-02e9-4d39-ad75-9611e0fcc33c"`
	SentTo  string `json:"sentTo" example:"team@cloux.co"`
}

// TestEmailController sends a diagnostic email to check the sending domain.
type TestEmailController struct {
	Logger   *slog.Logger
	Email    domain.EmailService
	From     string
	Fallback string
	Now      func() time.Time
}

// NewTestEmailController creates a TestEmailController sending from the diagnostic sender.
// Requests without an address go to fallback.
func NewTestEmailController(logger *slog.Logger, email domain.EmailService, from, fallback string) *TestEmailController {
	return &TestEmailController{
		Logger:   logger,
		Email:    email,
		From:     from,
		Fallback: fallback,
		Now:      time.Now,
	}
}

// SendTestEmail godoc
// @Summary Send a test email
// @Description Sends the diagnostic email to the given address, or to the configured fallback address when none is given. An unreadable body counts as no address.
// @Tags diagnostics
// @Accept json
// @Produce json
// @Param body body TestEmailRequest false "Recipient"
// @Success 200 {object} controllers.TestEmailResponse
// @Failure 400 {object} helpers.ErrorResponse "Invalid email format"
// @Failure 500 {object} helpers.ErrorResponse "Failed to send test email"
// @Router /test-email [post]
func (c *TestEmailController) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	var req TestEmailRequest
	if err := helpers.DecodeJSON(r, &req, true); err != nil {
		req = TestEmailRequest{}
	}

	to := c.Fallback
	if req.Email != "" {
		email, err := services.NormalizeEmail(req.Email)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgInvalidEmail)
			return
		}
		to = email
	}

	id, err := c.Email.SendTestEmail(r.Context(), &domain.TestEmailData{
		From:   c.From,
		Email:  to,
		SentAt: c.Now(),
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "method", r.Method,
			"request_id", middleware.GetRequestID(r.Context()), "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgTestEmailFailed)
		return
	}
	if id == "" {
		id = "unknown"
	}

	helpers.WriteJSON(w, http.StatusOK, TestEmailResponse{
		Success: true,
		Message: fmt.Sprintf("Test email sent to %s!", to),
		EmailID: id,
		SentTo:  to,
	})
}
