package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloux/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendSignupConfirmation sends the "signup_confirmation" email to the applicant.
// The signup id and the unsubscribe mailbox travel as headers.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("signup confirmation data is nil")
	}
	headers := map[string]string{"X-Entity-Ref-ID": data.SignupID}
	if data.UnsubscribeAddress != "" {
		headers["List-Unsubscribe"] = "<mailto:" + data.UnsubscribeAddress + ">"
	}
	return s.send(ctx, "signup_confirmation", data.From, data.Email, headers, data)
}

// SendOperatorNotification sends the "operator_notification" email summarizing a new signup.
func (s *emailService) SendOperatorNotification(ctx context.Context, data *domain.OperatorNotificationEmailData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("operator notification data is nil")
	}
	return s.send(ctx, "operator_notification", data.From, data.To, nil, data)
}

// SendTestEmail sends the "test_email" diagnostic message.
func (s *emailService) SendTestEmail(ctx context.Context, data *domain.TestEmailData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("test email data is nil")
	}
	return s.send(ctx, "test_email", data.From, data.Email, nil, data)
}

func (s *emailService) send(ctx context.Context, tmpl, from, to string, headers map[string]string, data any) (string, error) {
	subject, htmlBody, textBody, err := s.renderer.Render(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl, err)
	}
	id, err := s.mailer.Send(ctx, &domain.EmailMessage{
		From:    from,
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
		Headers: headers,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send %s email: %w", tmpl, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", tmpl, "message_id", id)
	return id, nil
}
