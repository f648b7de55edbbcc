package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// createSchema applies the embedded migrations. It is idempotent: applying
// them against an up-to-date database is a no-op. When dropFirst is set it
// first destroys every object in the schema, which is irreversible.
func createSchema(db *sql.DB, dropFirst bool) error {
	if dropFirst {
		m, err := newMigrator(db)
		if err != nil {
			return err
		}
		if err := m.Drop(); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}

	// A fresh migrator re-creates the version table that Drop removes.
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := ignoreNoChange(m.Up()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// ignoreNoChange treats migrate.ErrNoChange as success: applying the
// migrations to an up-to-date database is a no-op, not a failure, which is
// what keeps CreateSchema idempotent.
func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
