package email

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"cloux/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTemplateRenderer_Render(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	t.Run("signup confirmation", func(t *testing.T) {
		subject, html, text, err := r.Render("signup_confirmation", &domain.SignupConfirmationEmailData{
			Email:              "a@example.com",
			SignupID:           "id-1",
			UnsubscribeAddress: "unsubscribe@cloux.co",
		})
		require.NoError(t, err)
		assert.Equal(t, "Cloux - Registration Confirmed", subject)
		assert.Contains(t, html, "a@example.com")
		assert.Contains(t, text, "unsubscribe@cloux.co")
	})

	t.Run("operator notification", func(t *testing.T) {
		created := time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC)
		subject, html, text, err := r.Render("operator_notification", &domain.OperatorNotificationEmailData{
			Email:     "a@example.com",
			SignupID:  "id-42",
			CreatedAt: created,
		})
		require.NoError(t, err)
		assert.Equal(t, "New Pilot Program Signup - Cloux", subject)
		assert.Contains(t, html, "id-42")
		assert.Contains(t, text, "Mar 4, 2025 05:06 UTC")
	})

	t.Run("html escapes input", func(t *testing.T) {
		_, html, _, err := r.Render("test_email", &domain.TestEmailData{
			From:   "Cloux Test <hello@cloux.co>",
			Email:  "<script>@example.com",
			SentAt: time.Now(),
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, _, err := r.Render("missing", nil)
		require.Error(t, err)
	})
}

func TestBuildRawMessage(t *testing.T) {
	raw, err := buildRawMessage(&domain.EmailMessage{
		From:    "Cloux Team <hello@cloux.co>",
		To:      "a@example.com",
		Subject: "Cloux - Registration Confirmed",
		HTML:    "<p>hello</p>",
		Text:    "hello",
		Headers: map[string]string{
			"X-Entity-Ref-ID":  "id-1",
			"List-Unsubscribe": "<mailto:unsubscribe@cloux.co>\r\nBcc: victim@example.com",
		},
	})
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Cloux Team <hello@cloux.co>", msg.Header.Get("From"))
	assert.Equal(t, "a@example.com", msg.Header.Get("To"))
	assert.Equal(t, "id-1", msg.Header.Get("X-Entity-Ref-Id"))
	assert.Empty(t, msg.Header.Get("Bcc"), "header values cannot inject new headers")

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Cloux - Registration Confirmed", subject)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	var types []string
	for {
		p, err := mr.NextPart()
		if err != nil {
			break
		}
		types = append(types, strings.SplitN(p.Header.Get("Content-Type"), ";", 2)[0])
	}
	assert.Equal(t, []string{"text/plain", "text/html"}, types)
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MailerConfig
		wantErr error
		want    any
	}{
		{name: "noop", cfg: MailerConfig{Provider: ProviderNoop}, want: &noopMailer{}},
		{name: "unknown falls back to noop", cfg: MailerConfig{Provider: "carrier-pigeon"}, want: &noopMailer{}},
		{name: "resend requires key", cfg: MailerConfig{Provider: ProviderResend}, wantErr: ErrMissingAPIKey},
		{name: "resend", cfg: MailerConfig{Provider: ProviderResend, ResendAPIKey: "re_test"}, want: &resendMailer{}},
		{name: "ses", cfg: MailerConfig{Provider: ProviderSES, SES: SESConfig{Region: "us-east-1"}}, want: &sesMailer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.cfg, testLogger)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, m)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m := &noopMailer{logger: testLogger}
	id, err := m.Send(context.Background(), &domain.EmailMessage{To: "a@example.com", Subject: "hi"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "noop-"))
}
