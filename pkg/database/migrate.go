package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Migrator applies the SQL files under a golang-migrate source URL (e.g. "file://migrations").
type Migrator struct {
	db     *sql.DB
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator opens a dedicated database/sql connection through the pgx stdlib driver.
func NewMigrator(databaseURL, migrationsPath string, logger *slog.Logger) (*Migrator, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return &Migrator{db: db, m: m, logger: logger}, nil
}

// Up applies all pending migrations. No pending migration is not an error.
func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("No new migrations to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	mg.logger.Info("Database migrations applied successfully.")
	return nil
}

// Down rolls back steps migrations.
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	mg.logger.Info("Database migrations rolled back.", slog.Int("steps", steps))
	return nil
}

// Version reports the current schema version and whether the last migration failed halfway.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close releases the migration source and connection.
func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	closeErr := mg.db.Close()
	return errors.Join(sourceErr, dbErr, closeErr)
}

// RunMigrations applies all pending migrations and closes the migrator.
func RunMigrations(databaseURL, migrationsPath string, logger *slog.Logger) error {
	mg, err := NewMigrator(databaseURL, migrationsPath, logger)
	if err != nil {
		return err
	}
	upErr := mg.Up()
	return errors.Join(upErr, mg.Close())
}
