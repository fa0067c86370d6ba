package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	applog "ledger/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// KVSchema is the schema behind SQLiteRepository.
var KVSchema = Schema{Source: migrationsFS, Dir: "migrations"}

// Schema locates a set of golang-migrate files inside a filesystem.
type Schema struct {
	Source fs.FS
	Dir    string
}

// Migrate brings the database at dbPath up to the latest version of schema
// and returns that version. An already current database is not an error.
func Migrate(dbPath string, schema Schema, logger *applog.Logger) (uint, error) {
	if logger == nil {
		logger = applog.Discard()
	}

	// Own connection: closing the migrator closes it
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return 0, fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(schema.Source, schema.Dir)
	if err != nil {
		return 0, fmt.Errorf("open migrations %s: %w", schema.Dir, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return 0, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
	case err != nil:
		return 0, fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	logger.Debug("Schema up to date", applog.FieldPath, dbPath, "schema_version", version)
	return version, nil
}
