package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/fleet-notify/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var notificationColumns = []string{"id", "driver_name", "payload", "created_at"}

const (
	driverTasksTable       = "driver_tasks"
	driverTaskEntriesTable = "driver_task_entries"
	driversTable           = "drivers"
	sitesTable             = "sites"
)

// buildSelectAllQuery renders the backend-agnostic select_all contract as
// PostgreSQL. Table and column names are quoted so that they can never be
// used to inject SQL.
func buildSelectAllQuery(query models.SelectQuery) (string, []any, error) {
	if query.Table == "" {
		return "", nil, fmt.Errorf("%w: empty table name", ErrBuildingSQLQuery)
	}

	builder := psql.
		Select(notificationColumns...).
		From(pgx.Identifier{query.Table}.Sanitize())

	if query.Filter.Field != "" {
		builder = builder.Where(sq.Eq{pgx.Identifier{query.Filter.Field}.Sanitize(): query.Filter.Value})
	}

	if query.OrderBy != "" {
		direction := "ASC"
		if query.Direction == models.Descending {
			direction = "DESC"
		}
		builder = builder.OrderBy(pgx.Identifier{query.OrderBy}.Sanitize() + " " + direction)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}

func buildTaskStatusesQuery() (string, []any, error) {
	sql, args, err := psql.
		Select("status", "scheduled_at", "created_at").
		From(driverTasksTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}

func buildTaskEntriesSinceQuery(since time.Time) (string, []any, error) {
	sql, args, err := psql.
		Select("liters", "submitted_at", "created_at").
		From(driverTaskEntriesTable).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}

func buildDriverZonesQuery() (string, []any, error) {
	sql, args, err := psql.
		Select("zone").
		From(driversTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}

// buildActiveSitesCountQuery counts sites that are on air or have works in
// progress (case-insensitive) in the served regions.
func buildActiveSitesCountQuery() (string, []any, error) {
	sql, args, err := psql.
		Select("COUNT(*)").
		From(sitesTable).
		Where(sq.Or{
			sq.Eq{"cow_status": models.SiteStatusOnAir},
			sq.ILike{"cow_status": "%" + models.SiteStatusInProgress + "%"},
		}).
		Where(sq.Eq{"region": models.ActiveSiteRegions}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}
