// Package repository opens the configured signup store.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"cloux/internal/domain"
	"cloux/internal/repository/migrations"
	"cloux/internal/repository/postgres"
	"cloux/internal/repository/sqlite"
)

// Store bundles the database handle with the signup repository built on it.
type Store struct {
	DB      *sql.DB
	Dialect migrations.Dialect
	Signups domain.SignupRepository
}

// Open connects to the database for driver ("postgres" or "sqlite").
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch migrations.Dialect(driver) {
	case migrations.Postgres:
		db, err := postgres.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db, Dialect: migrations.Postgres, Signups: postgres.NewSignupRepository(db)}, nil
	case migrations.SQLite:
		db, err := sqlite.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db, Dialect: migrations.SQLite, Signups: sqlite.NewSignupRepository(db)}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate applies pending schema migrations.
func (s *Store) Migrate(ctx context.Context, logger *slog.Logger) ([]string, error) {
	return migrations.Run(ctx, s.DB, s.Dialect, logger)
}

func (s *Store) Close() error {
	return s.DB.Close()
}
