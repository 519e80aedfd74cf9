package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cloux/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE Postgres reports for a unique constraint failure.
const uniqueViolation = "23505"

type signupRepository struct {
	DB *sql.DB
}

// NewSignupRepository returns a domain.SignupRepository implemented with Postgres.
func NewSignupRepository(db *sql.DB) domain.SignupRepository {
	return &signupRepository{DB: db}
}

func (r *signupRepository) Create(ctx context.Context, s *domain.Signup) error {
	query := `
		INSERT INTO signups (id, email, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Email, s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *signupRepository) GetByEmail(ctx context.Context, email string) (*domain.Signup, error) {
	query := `
		SELECT id, email, created_at
		FROM signups
		WHERE email = $1
	`
	s := &domain.Signup{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *signupRepository) List(ctx context.Context) ([]*domain.Signup, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, email, created_at
		FROM signups
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	signups := []*domain.Signup{}
	for rows.Next() {
		var s domain.Signup
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		signups = append(signups, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return signups, nil
}

func (r *signupRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM signups`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *signupRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
