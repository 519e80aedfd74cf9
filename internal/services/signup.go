package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"cloux/config"
	"cloux/internal/domain"
)

const maxEmailLength = 254

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var tracer = otel.Tracer("cloux/internal/services")

// SignupServiceConfig carries the notification settings of the intake workflow.
type SignupServiceConfig struct {
	Senders            config.SenderIdentity
	OperatorEmail      string
	UnsubscribeAddress string
}

type signupService struct {
	repo   domain.SignupRepository
	email  domain.EmailService
	cfg    SignupServiceConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewSignupService creates a SignupService backed by repo that notifies through email.
func NewSignupService(repo domain.SignupRepository, email domain.EmailService, cfg SignupServiceConfig, logger *slog.Logger) domain.SignupService {
	return &signupService{
		repo:   repo,
		email:  email,
		cfg:    cfg,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NormalizeEmail trims the address and checks its format.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLength || !emailRegexp.MatchString(email) {
		return "", domain.ErrInvalidEmail
	}
	return email, nil
}

func (s *signupService) Register(ctx context.Context, email string) (*domain.SignupResult, error) {
	ctx, span := tracer.Start(ctx, "signup.register")
	defer span.End()

	result, err := s.register(ctx, email)
	switch {
	case err == nil:
		span.SetAttributes(attribute.String("signup.outcome", "created"), attribute.Int("signup.total", result.TotalSignups))
	case errors.Is(err, domain.ErrInvalidEmail):
		span.SetAttributes(attribute.String("signup.outcome", "invalid"))
	case errors.Is(err, domain.ErrDuplicateEmail):
		span.SetAttributes(attribute.String("signup.outcome", "duplicate"))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "signup failed")
	}
	return result, err
}

func (s *signupService) register(ctx context.Context, email string) (*domain.SignupResult, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	// Early exit only; the unique constraint on the store decides.
	_, err = s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrSignupNotFound) {
		return nil, fmt.Errorf("failed to look up signup: %w", err)
	}

	signup := domain.NewSignup(ulid.Make().String(), email, s.now())
	if err := s.repo.Create(ctx, signup); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create signup: %w", err)
	}
	s.logger.InfoContext(ctx, "signup created", "signup_id", signup.ID)

	s.notify(ctx, signup)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count signups: %w", err)
	}
	return &domain.SignupResult{Signup: signup, TotalSignups: total}, nil
}

// notify sends the applicant confirmation and, when configured, the operator alert.
// Failures are logged only: the signup is already stored and sends are not retried.
func (s *signupService) notify(ctx context.Context, signup *domain.Signup) {
	if _, err := s.email.SendSignupConfirmation(ctx, &domain.SignupConfirmationEmailData{
		From:               s.cfg.Senders.Confirmation,
		Email:              signup.Email,
		SignupID:           signup.ID,
		UnsubscribeAddress: s.cfg.UnsubscribeAddress,
	}); err != nil {
		s.logger.ErrorContext(ctx, "signup confirmation not delivered", "signup_id", signup.ID, "err", err)
	}

	if s.cfg.OperatorEmail == "" {
		return
	}
	if _, err := s.email.SendOperatorNotification(ctx, &domain.OperatorNotificationEmailData{
		From:      s.cfg.Senders.Notification,
		To:        s.cfg.OperatorEmail,
		Email:     signup.Email,
		SignupID:  signup.ID,
		CreatedAt: signup.CreatedAt,
	}); err != nil {
		s.logger.ErrorContext(ctx, "operator notification not delivered", "signup_id", signup.ID, "err", err)
	}
}

func (s *signupService) List(ctx context.Context) (*domain.SignupListing, error) {
	signups, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count signups: %w", err)
	}
	return &domain.SignupListing{Signups: signups, TotalCount: total}, nil
}
