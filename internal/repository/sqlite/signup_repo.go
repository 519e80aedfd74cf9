package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cloux/internal/domain"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type signupRepository struct {
	DB *sql.DB
}

// NewSignupRepository returns a domain.SignupRepository implemented with SQLite.
func NewSignupRepository(db *sql.DB) domain.SignupRepository {
	return &signupRepository{DB: db}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

func (r *signupRepository) Create(ctx context.Context, s *domain.Signup) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO signups (id, email, created_at) VALUES (?, ?, ?)`,
		s.ID, s.Email, toMillis(s.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *signupRepository) GetByEmail(ctx context.Context, email string) (*domain.Signup, error) {
	var (
		s       domain.Signup
		created int64
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM signups WHERE email = ?`, email,
	).Scan(&s.ID, &s.Email, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, err
	}
	s.CreatedAt = fromMillis(created)
	return &s, nil
}

func (r *signupRepository) List(ctx context.Context) ([]*domain.Signup, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, email, created_at FROM signups ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	signups := []*domain.Signup{}
	for rows.Next() {
		var (
			s       domain.Signup
			created int64
		)
		if err := rows.Scan(&s.ID, &s.Email, &created); err != nil {
			return nil, err
		}
		s.CreatedAt = fromMillis(created)
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

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "signups.email")
}
