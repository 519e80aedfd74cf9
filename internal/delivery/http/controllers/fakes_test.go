package controllers

import (
	"context"
	"io"
	"log/slog"

	"cloux/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeSignupService implements domain.SignupService for handler tests.
type fakeSignupService struct {
	registerResult *domain.SignupResult
	registerErr    error
	lastEmail      string
	listing        *domain.SignupListing
	listErr        error
}

func (f *fakeSignupService) Register(ctx context.Context, email string) (*domain.SignupResult, error) {
	f.lastEmail = email
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerResult, nil
}

func (f *fakeSignupService) List(ctx context.Context) (*domain.SignupListing, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listing, nil
}

// fakeEmailService implements domain.EmailService and records test sends.
type fakeEmailService struct {
	id       string
	err      error
	lastTest *domain.TestEmailData
}

func (f *fakeEmailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) (string, error) {
	return f.id, f.err
}

func (f *fakeEmailService) SendOperatorNotification(ctx context.Context, data *domain.OperatorNotificationEmailData) (string, error) {
	return f.id, f.err
}

func (f *fakeEmailService) SendTestEmail(ctx context.Context, data *domain.TestEmailData) (string, error) {
	f.lastTest = data
	return f.id, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }
