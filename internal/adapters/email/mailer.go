package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/oklog/ulid/v2"
	"github.com/resend/resend-go/v2"

	"cloux/internal/domain"
)

// Providers accepted by NewMailer.
const (
	ProviderResend = "resend"
	ProviderSES    = "ses"
	ProviderNoop   = "noop"
)

// ErrMissingAPIKey is returned when the resend provider is selected without an API key.
var ErrMissingAPIKey = errors.New("email provider api key is required")

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider     string
	ResendAPIKey string
	SES          SESConfig
	// HTTPClient overrides the transport of the resend provider.
	HTTPClient *http.Client
}

// NewMailer creates a mailer from config. Unknown providers fall back to the no-op mailer.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case ProviderResend:
		if config.ResendAPIKey == "" {
			return nil, ErrMissingAPIKey
		}
		client := resend.NewClient(config.ResendAPIKey)
		if config.HTTPClient != nil {
			client = resend.NewCustomClient(config.HTTPClient, config.ResendAPIKey)
		}
		return &resendMailer{client: client, logger: logger}, nil
	case ProviderSES:
		if config.SES.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled for SES. Use only in development.")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: config.SES.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region: config.SES.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					config.SES.AccessKeyID,
					config.SES.SecretAccessKey,
					"",
				),
			),
			HTTPClient: httpClient,
		}
		return &sesMailer{client: ses.NewFromConfig(awsCfg), logger: logger}, nil
	case ProviderNoop:
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type resendMailer struct {
	client *resend.Client
	logger *slog.Logger
}

func (m *resendMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Headers: msg.Headers,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email via resend: %w", err)
	}
	m.logger.DebugContext(ctx, "email sent via resend", "message_id", sent.Id)
	return sent.Id, nil
}

// sesMailer sends raw MIME messages because SendEmail drops custom headers.
type sesMailer struct {
	client *ses.Client
	logger *slog.Logger
}

func (s *sesMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	raw, err := buildRawMessage(msg)
	if err != nil {
		return "", fmt.Errorf("failed to build raw message: %w", err)
	}
	result, err := s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(msg.From),
		Destinations: []string{msg.To},
		RawMessage:   &types.RawMessage{Data: raw},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email via SES: %w", err)
	}
	id := aws.ToString(result.MessageId)
	s.logger.DebugContext(ctx, "email sent via SES", "message_id", id)
	return id, nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	id := "noop-" + ulid.Make().String()
	n.logger.InfoContext(ctx, "email would be sent (noop)", "subject", msg.Subject, "message_id", id)
	return id, nil
}
