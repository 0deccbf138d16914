package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

const migrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// Migrate applies the "<version>.up.sql" files of fsys in lexical order, or
// reverts the applied "<version>.down.sql" files in reverse order. Applied
// versions are recorded in schema_migrations, so running up twice is a no-op.
// It returns how many files were executed.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS, direction string) (int, error) {
	if direction != "up" && direction != "down" {
		return 0, fmt.Errorf("direction must be 'up' or 'down', got %q", direction)
	}

	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	suffix := fmt.Sprintf(".%s.sql", direction)
	files, err := fs.Glob(fsys, "*"+suffix)
	if err != nil {
		return 0, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)
	if direction == "down" {
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}

	applied := 0
	for _, filename := range files {
		version := strings.TrimSuffix(filename, suffix)

		content, err := fs.ReadFile(fsys, filename)
		if err != nil {
			return applied, fmt.Errorf("read migration file %s: %w", filename, err)
		}

		ran := false
		err = WithTransaction(ctx, db, DefaultTxOptions(), func(tx *sql.Tx) error {
			var done bool
			err := tx.QueryRowContext(ctx,
				"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)",
				version).Scan(&done)
			if err != nil {
				return fmt.Errorf("check migration %s: %w", version, err)
			}
			if done == (direction == "up") {
				return nil
			}

			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("execute migration %s: %w", filename, err)
			}

			if direction == "up" {
				_, err = tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version)
			} else {
				_, err = tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = $1", version)
			}
			if err != nil {
				return fmt.Errorf("record migration %s: %w", version, err)
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, err
		}
		if ran {
			applied++
		}
	}

	return applied, nil
}
