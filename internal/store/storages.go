package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
)

// Storages groups the repositories backed by the hosted PostgreSQL database
// together with the change listener on the same database.
type Storages struct {
	NotificationRepository NotificationRepository
	DashboardRepository    DashboardRepository
	ChangeListener         *ChangeListener

	db *DB
}

// NewStorages connects to the hosted database and constructs its
// repositories and change listener. Migrations are not applied; see
// [Storages.Migrate].
func NewStorages(ctx context.Context, db config.DB, workers config.Workers, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	conn, err := NewConnectPostgres(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		NotificationRepository: NewNotificationRepository(conn, logger),
		DashboardRepository:    NewDashboardRepository(conn, logger),
		ChangeListener:         NewChangeListener(db, workers, logger),
		db:                     conn,
	}, nil
}

// Migrate applies pending schema migrations.
func (s *Storages) Migrate() error {
	if err := s.db.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

// ClientStorages groups the storages local to the driver's device.
type ClientStorages struct {
	// PreferenceRepository keeps driver preferences such as the remembered
	// driver identity.
	PreferenceRepository PreferenceRepository

	db *DB
}

// NewClientStorages opens (creating when missing) the local SQLite store.
func NewClientStorages(ctx context.Context, cfg config.Local, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		PreferenceRepository: NewPreferenceRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the local database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
