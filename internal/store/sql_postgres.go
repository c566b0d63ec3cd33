package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Pool limits of the hosted database. Every streaming client refetches on
// change events, so idle connections are kept around for the bursts.
const (
	maxOpenConns    = 10
	maxIdleConns    = 4
	connMaxIdleTime = 5 * time.Minute

	pingRetries = 3
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// NewConnectPostgres opens the pgx pool for cfg.DSN and waits until the
// server answers. Transient ping failures are retried a few times; errors
// such as bad credentials fail at once.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening database")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxIdleTime(connMaxIdleTime)

	classifier := NewPostgresErrorClassifier()
	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), pingRetries)
	if err = pingWithRetry(ctx, conn, classifier, b, log); err != nil {
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}, nil
}

func pingWithRetry(ctx context.Context, db pinger, classifier ErrorClassificator, b backoff.BackOff, log *logger.Logger) error {
	operation := func() error {
		err := db.PingContext(ctx)
		if err != nil && classifier.Classify(err) == NonRetryable {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		log.Warn().Err(err).
			Str("func", "pingWithRetry").
			Str("pg_code", postgresError(err)).
			Dur("retry_in", next).
			Msg("database ping failed, retrying")
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		log.Err(err).Str("func", "pingWithRetry").Str("pg_code", postgresError(err)).Msg("database did not answer ping")
		return fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	return nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
