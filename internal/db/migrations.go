package db

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

var gooseSetup sync.Once

// ApplyMigrations brings the schema up to date. Safe to call on every start.
func ApplyMigrations(db *sql.DB) error {
	var setupErr error
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrations)
		goose.SetLogger(goose.NopLogger())
		setupErr = goose.SetDialect("sqlite3")
	})
	if setupErr != nil {
		return fmt.Errorf("set migration dialect: %w", setupErr)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
