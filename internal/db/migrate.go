package db

import (
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies pending schema migrations. The users migration carries
// the unique email index that registration relies on.
func RunMigrations(dsn string) error {
	migrationsPath, err := filepath.Abs("./internal/db/migrations")
	if err != nil {
		return err
	}

	m, err := migrate.New(
		"file://"+migrationsPath,
		"mysql://"+dsn,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
