package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/validators"
	"github.com/MKhiriev/fleet-notify/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	*DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		DB:        db,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

// SelectAll returns every row of query.Table matching query.Filter in the
// requested order. The jsonb payload column is decoded into
// [models.Notification.Payload]; a NULL payload leaves it nil.
func (r *notificationRepository) SelectAll(ctx context.Context, query models.SelectQuery) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, query); err != nil {
		log.Err(err).
			Str("func", "notificationRepository.SelectAll").
			Str("table", query.Table).
			Msg("invalid select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sqlQuery, args, err := buildSelectAllQuery(query)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.SelectAll").
			Str("table", query.Table).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.SelectAll").
			Str("table", query.Table).
			Str("filter", query.Filter.Value).
			Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, 32)

	for rows.Next() {
		var (
			item    models.Notification
			payload []byte
		)

		if scanErr := rows.Scan(&item.ID, &item.DriverName, &payload, &item.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "notificationRepository.SelectAll").
				Msg("failed to scan notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if len(payload) > 0 {
			if jsonErr := json.Unmarshal(payload, &item.Payload); jsonErr != nil {
				log.Err(jsonErr).
					Str("func", "notificationRepository.SelectAll").
					Int64("id", item.ID).
					Msg("failed to decode notification payload")
				return nil, fmt.Errorf("%w: %w", ErrDecodingPayload, jsonErr)
			}
		}

		notifications = append(notifications, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "notificationRepository.SelectAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notifications, nil
}
