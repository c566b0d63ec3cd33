package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/models"
)

type dashboardRepository struct {
	*DB
	logger *logger.Logger
}

// NewDashboardRepository constructs a [DashboardRepository] over the hosted
// database.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *dashboardRepository) TaskStatuses(ctx context.Context) ([]models.DriverTask, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTaskStatusesQuery()
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.TaskStatuses").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.TaskStatuses").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.DriverTask, 0, 64)
	for rows.Next() {
		var (
			task        models.DriverTask
			status      sql.NullString
			scheduledAt sql.NullTime
		)
		if err := rows.Scan(&status, &scheduledAt, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "dashboardRepository.TaskStatuses").Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		task.Status = status.String
		if scheduledAt.Valid {
			task.ScheduledAt = &scheduledAt.Time
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "dashboardRepository.TaskStatuses").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

func (r *dashboardRepository) TaskEntriesSince(ctx context.Context, since time.Time) ([]models.TaskEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTaskEntriesSinceQuery(since)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.TaskEntriesSince").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "dashboardRepository.TaskEntriesSince").
			Time("since", since).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TaskEntry, 0, 128)
	for rows.Next() {
		var (
			entry       models.TaskEntry
			liters      sql.NullFloat64
			submittedAt sql.NullTime
		)
		if err := rows.Scan(&liters, &submittedAt, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "dashboardRepository.TaskEntriesSince").Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		entry.Liters = liters.Float64
		if submittedAt.Valid {
			entry.SubmittedAt = &submittedAt.Time
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "dashboardRepository.TaskEntriesSince").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *dashboardRepository) DriverZones(ctx context.Context) ([]models.Driver, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDriverZonesQuery()
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.DriverZones").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.DriverZones").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	drivers := make([]models.Driver, 0, 64)
	for rows.Next() {
		var zone sql.NullString
		if err := rows.Scan(&zone); err != nil {
			log.Err(err).Str("func", "dashboardRepository.DriverZones").Msg("failed to scan driver row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		drivers = append(drivers, models.Driver{Zone: zone.String})
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "dashboardRepository.DriverZones").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return drivers, nil
}

func (r *dashboardRepository) ActiveSitesCount(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildActiveSitesCountQuery()
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.ActiveSitesCount").Msg("failed to create query")
		return 0, err
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "dashboardRepository.ActiveSitesCount").Msg("failed to count active sites")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
