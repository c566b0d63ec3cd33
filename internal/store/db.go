package store

import (
	"database/sql"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/migrations"
)

// DB is a database handle shared by the repositories of one backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded PostgreSQL migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
