// Package migrations applies the embedded schema files for each supported SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect selects the migration set and the bookkeeping SQL.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

type dialectSQL struct {
	createTable string
	insert      string
}

var bookkeeping = map[Dialect]dialectSQL{
	Postgres: {
		createTable: `CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		insert: `INSERT INTO schema_migrations (filename) VALUES ($1)`,
	},
	SQLite: {
		createTable: `CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		insert: `INSERT INTO schema_migrations (filename) VALUES (?)`,
	},
}

// Run applies all unapplied migrations for dialect and returns the files it applied.
// Applied migrations are tracked in a schema_migrations table.
func Run(ctx context.Context, db *sql.DB, dialect Dialect, logger *slog.Logger) ([]string, error) {
	stmts, ok := bookkeeping[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if _, err := db.ExecContext(ctx, stmts.createTable); err != nil {
		return nil, fmt.Errorf("ensure migrations table: %w", err)
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("get applied migrations: %w", err)
	}

	names, err := List(dialect)
	if err != nil {
		return nil, fmt.Errorf("list migration files: %w", err)
	}

	var ran []string
	for _, name := range names {
		if applied[name] {
			logger.DebugContext(ctx, "migration already applied", "file", name)
			continue
		}
		if err := apply(ctx, db, dialect, stmts.insert, name); err != nil {
			return ran, fmt.Errorf("apply migration %s: %w", name, err)
		}
		logger.InfoContext(ctx, "migration applied", "file", name)
		ran = append(ran, name)
	}
	return ran, nil
}

// List returns the migration file names for dialect in apply order.
func List(dialect Dialect) ([]string, error) {
	entries, err := fs.ReadDir(files, string(dialect))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, dialect Dialect, insert, name string) error {
	content, err := fs.ReadFile(files, string(dialect)+"/"+name)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("execute sql: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insert, name); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return tx.Commit()
}
