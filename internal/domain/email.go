package domain

import (
	"context"
	"time"
)

// EmailMessage is one outgoing email as handed to a Mailer.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

// Mailer defines the contract for sending emails (infrastructure port).
// Send returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) (string, error)
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SignupConfirmationEmailData holds data for the applicant confirmation email.
type SignupConfirmationEmailData struct {
	From               string
	Email              string
	SignupID           string
	UnsubscribeAddress string
}

// OperatorNotificationEmailData holds data for the new-signup alert sent to the operator.
type OperatorNotificationEmailData struct {
	From      string
	To        string
	Email     string
	SignupID  string
	CreatedAt time.Time
}

// TestEmailData holds data for the diagnostic email.
type TestEmailData struct {
	From   string
	Email  string
	SentAt time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *SignupConfirmationEmailData) (string, error)
	SendOperatorNotification(ctx context.Context, data *OperatorNotificationEmailData) (string, error)
	SendTestEmail(ctx context.Context, data *TestEmailData) (string, error)
}
