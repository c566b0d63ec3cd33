package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-notify/internal/logger"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

// NewPreferenceRepository constructs the SQLite-backed [PreferenceRepository].
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored value of key. found is false when the key was never
// set or has been deleted.
func (p *preferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyPreferenceKey
	}

	log := logger.FromContext(ctx)

	var value string
	err := p.DB.QueryRowContext(ctx, getPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.Get").
			Str("key", key).
			Msg("failed to read preference")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (p *preferenceRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyPreferenceKey
	}

	log := logger.FromContext(ctx)

	if _, err := p.DB.ExecContext(ctx, upsertPreference, key, value); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.Set").
			Str("key", key).
			Msg("failed to save preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (p *preferenceRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyPreferenceKey
	}

	log := logger.FromContext(ctx)

	if _, err := p.DB.ExecContext(ctx, deletePreference, key); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.Delete").
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
