package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloux/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer implements domain.Mailer and keeps the last message.
type recordingMailer struct {
	last *domain.EmailMessage
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	m.last = msg
	if m.err != nil {
		return "", m.err
	}
	return "provider-id-1", nil
}

// stubRenderer implements domain.EmailTemplateRenderer.
type stubRenderer struct {
	name string
	err  error
}

func (r *stubRenderer) Render(name string, data any) (string, string, string, error) {
	r.name = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject " + name, "<p>" + name + "</p>", name, nil
}

func TestEmailService_SendSignupConfirmation(t *testing.T) {
	mailer := &recordingMailer{}
	renderer := &stubRenderer{}
	svc := NewEmailService(mailer, renderer, discardLogger)

	id, err := svc.SendSignupConfirmation(context.Background(), &domain.SignupConfirmationEmailData{
		From:               "Cloux Team <hello@cloux.co>",
		Email:              "a@example.com",
		SignupID:           "01J0000000000000000000000",
		UnsubscribeAddress: "unsubscribe@cloux.co",
	})
	require.NoError(t, err)
	assert.Equal(t, "provider-id-1", id)
	assert.Equal(t, "signup_confirmation", renderer.name)

	msg := mailer.last
	require.NotNil(t, msg)
	assert.Equal(t, "Cloux Team <hello@cloux.co>", msg.From)
	assert.Equal(t, "a@example.com", msg.To)
	assert.Equal(t, "subject signup_confirmation", msg.Subject)
	assert.Equal(t, "01J0000000000000000000000", msg.Headers["X-Entity-Ref-ID"])
	assert.Equal(t, "<mailto:unsubscribe@cloux.co>", msg.Headers["List-Unsubscribe"])
}

func TestEmailService_SendOperatorNotification(t *testing.T) {
	mailer := &recordingMailer{}
	renderer := &stubRenderer{}
	svc := NewEmailService(mailer, renderer, discardLogger)

	_, err := svc.SendOperatorNotification(context.Background(), &domain.OperatorNotificationEmailData{
		From:      "Cloux Notifications <notifications@cloux.co>",
		To:        "ops@cloux.co",
		Email:     "a@example.com",
		SignupID:  "id-1",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "operator_notification", renderer.name)
	assert.Equal(t, "ops@cloux.co", mailer.last.To)
	assert.Empty(t, mailer.last.Headers)
}

func TestEmailService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&recordingMailer{}, &stubRenderer{}, discardLogger)
		_, err := svc.SendSignupConfirmation(ctx, nil)
		require.Error(t, err)
		_, err = svc.SendOperatorNotification(ctx, nil)
		require.Error(t, err)
		_, err = svc.SendTestEmail(ctx, nil)
		require.Error(t, err)
	})

	t.Run("render failure does not send", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := NewEmailService(mailer, &stubRenderer{err: errors.New("bad template")}, discardLogger)
		_, err := svc.SendTestEmail(ctx, &domain.TestEmailData{Email: "a@example.com"})
		require.Error(t, err)
		assert.Nil(t, mailer.last)
	})

	t.Run("mailer failure is wrapped", func(t *testing.T) {
		sendErr := errors.New("rejected")
		svc := NewEmailService(&recordingMailer{err: sendErr}, &stubRenderer{}, discardLogger)
		_, err := svc.SendTestEmail(ctx, &domain.TestEmailData{Email: "a@example.com"})
		require.ErrorIs(t, err, sendErr)
	})
}
