// Package database opens the local SQLite database, applies the embedded
// goose migrations and hands out the repositories built on top of it.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/birthdaybook/internal/migrations"
	"github.com/dmitrijs2005/birthdaybook/internal/repositories/kv"
	"github.com/pressly/goose/v3"
)

type Repositories struct {
	KV kv.Repository
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the database at dsn, migrates it and returns the handle
// together with the repositories. A failure here is fatal for the caller:
// the application cannot run without its storage.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, &Repositories{KV: kv.NewSQLiteRepository(db)}, nil
}
