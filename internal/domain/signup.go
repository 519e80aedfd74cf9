package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for signup operations.
var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrSignupNotFound = errors.New("signup not found")
	ErrUnauthorized   = errors.New("unauthorized")
)

// Signup is one pilot-program registration, unique by email.
// swagger:model Signup
type Signup struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSignup returns a Signup with the given id, email and creation time.
func NewSignup(id, email string, createdAt time.Time) *Signup {
	return &Signup{ID: id, Email: email, CreatedAt: createdAt}
}

// SignupRepository defines the interface for signup storage.
// Create must return ErrDuplicateEmail when the store's unique constraint rejects the row.
type SignupRepository interface {
	Create(ctx context.Context, signup *Signup) error
	GetByEmail(ctx context.Context, email string) (*Signup, error)
	List(ctx context.Context) ([]*Signup, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// SignupResult is returned by a successful registration.
type SignupResult struct {
	Signup       *Signup
	TotalSignups int
}

// SignupListing is the admin view of all signups, newest first.
type SignupListing struct {
	Signups    []*Signup
	TotalCount int
}

// SignupService runs the intake workflow and the admin listing.
type SignupService interface {
	Register(ctx context.Context, email string) (*SignupResult, error)
	List(ctx context.Context) (*SignupListing, error)
}

// SecretVerifier checks an admin bearer credential. It returns ErrUnauthorized on mismatch.
type SecretVerifier interface {
	Verify(credential string) error
}
