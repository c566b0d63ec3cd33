// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/metrics"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// listenConn is the part of *pgx.Conn the listener uses.
type listenConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

type dialFunc func(ctx context.Context, dsn string) (listenConn, error)

func dialPgx(ctx context.Context, dsn string) (listenConn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type subscriber struct {
	spec    models.SubscriptionSpec
	onEvent func(models.ChangeEvent)
}

// changePayload is the JSON document published by the
// notify_driver_notifications_change trigger.
type changePayload struct {
	Type       string `json:"type"`
	Table      string `json:"table"`
	DriverName string `json:"driver_name"`
	ID         int64  `json:"id"`
}

// ChangeListener is a change feed over PostgreSQL LISTEN/NOTIFY. It holds a
// dedicated connection, decodes trigger payloads into [models.ChangeEvent]
// and fans them out to the subscribers whose spec matches.
//
// After a lost connection is re-established every subscriber receives a
// [models.ChangeResync] event, since notifications sent in between are lost.
type ChangeListener struct {
	dsn        string
	channel    string
	workers    config.Workers
	classifier ErrorClassificator
	dial       dialFunc
	logger     *logger.Logger
	metrics    *metrics.Metrics

	mu          sync.RWMutex
	running     bool
	subscribers map[string]subscriber
}

// NewChangeListener constructs a listener for the NOTIFY channel configured
// in workers. It does not connect until [ChangeListener.Run] is called.
func NewChangeListener(db config.DB, workers config.Workers, log *logger.Logger) *ChangeListener {
	return &ChangeListener{
		dsn:         db.DSN,
		channel:     workers.ListenChannel,
		workers:     workers,
		classifier:  NewPostgresErrorClassifier(),
		dial:        dialPgx,
		logger:      log,
		metrics:     metrics.GetMetrics(),
		subscribers: make(map[string]subscriber),
	}
}

// Subscribe registers onEvent for changes matching spec and returns the
// handle to pass to [ChangeListener.Unsubscribe]. onEvent runs on the
// listener goroutine and must not block.
//
// It fails with [ErrListenerNotRunning] while no LISTEN connection is up and
// with [ErrUnsupportedFilter] when spec filters on a column the feed lacks.
func (l *ChangeListener) Subscribe(ctx context.Context, spec models.SubscriptionSpec, onEvent func(models.ChangeEvent)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !spec.FilterSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFilter, spec.Filter.Field)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return "", ErrListenerNotRunning
	}

	handleID := uuid.NewString()
	l.subscribers[handleID] = subscriber{spec: spec, onEvent: onEvent}
	l.metrics.ListenerSubscribers.Set(float64(len(l.subscribers)))

	l.logger.Debug().
		Str("func", "ChangeListener.Subscribe").
		Str("handle", handleID).
		Str("table", spec.Table).
		Str("filter", spec.Filter.Value).
		Msg("subscriber registered")

	return handleID, nil
}

// Unsubscribe removes the subscriber. Unknown or already removed handles are
// ignored.
func (l *ChangeListener) Unsubscribe(handleID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.subscribers[handleID]; !ok {
		return
	}
	delete(l.subscribers, handleID)
	l.metrics.ListenerSubscribers.Set(float64(len(l.subscribers)))
}

// Running reports whether the LISTEN connection is currently up.
func (l *ChangeListener) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// Run connects, issues LISTEN and dispatches notifications until ctx is
// cancelled. Lost connections are re-established with exponential backoff;
// errors the classifier deems non-retryable (bad credentials, missing
// objects) end Run with that error.
func (l *ChangeListener) Run(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	if l.workers.RetryInitialInterval > 0 {
		b.InitialInterval = l.workers.RetryInitialInterval
	}
	if l.workers.RetryMaxInterval > 0 {
		b.MaxInterval = l.workers.RetryMaxInterval
	}
	b.MaxElapsedTime = 0

	connected := false

	operation := func() error {
		conn, err := l.connect(ctx)
		if err != nil {
			if ctx.Err() != nil || l.classifier.Classify(err) == NonRetryable {
				return backoff.Permanent(err)
			}
			return err
		}
		defer conn.Close(context.Background())

		b.Reset()
		l.setRunning(true)
		defer l.setRunning(false)

		if connected {
			l.metrics.ListenerReconnectsTotal.Inc()
			l.dispatch(models.ChangeEvent{Type: models.ChangeResync, Table: models.NotificationsTable})
		}
		connected = true

		err = l.receive(ctx, conn)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		l.logger.Warn().Err(err).
			Str("func", "ChangeListener.Run").
			Str("pg_code", postgresError(err)).
			Dur("retry_in", next).
			Msg("change listener connection lost, reconnecting")
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
	if ctx.Err() != nil {
		l.logger.Info().Str("func", "ChangeListener.Run").Msg("change listener stopped")
		return nil
	}

	l.logger.Err(err).Str("func", "ChangeListener.Run").Msg("change listener failed")
	return fmt.Errorf("change listener: %w", err)
}

func (l *ChangeListener) connect(ctx context.Context) (listenConn, error) {
	conn, err := l.dial(ctx, l.dsn)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		conn.Close(context.Background())
		return nil, err
	}

	l.logger.Info().
		Str("func", "ChangeListener.connect").
		Str("channel", l.channel).
		Msg("listening for changes")

	return conn, nil
}

func (l *ChangeListener) receive(ctx context.Context, conn listenConn) error {
	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		ev, err := decodeChangePayload(n.Payload)
		if err != nil {
			l.logger.Warn().Err(err).
				Str("func", "ChangeListener.receive").
				Str("payload", n.Payload).
				Msg("skipping notification")
			continue
		}

		l.dispatch(ev)
	}
}

func (l *ChangeListener) dispatch(ev models.ChangeEvent) {
	l.mu.RLock()
	targets := make([]func(models.ChangeEvent), 0, len(l.subscribers))
	for _, s := range l.subscribers {
		if s.spec.Matches(ev) {
			targets = append(targets, s.onEvent)
		}
	}
	l.mu.RUnlock()

	for _, onEvent := range targets {
		onEvent(ev)
	}
}

func (l *ChangeListener) setRunning(running bool) {
	l.mu.Lock()
	l.running = running
	l.mu.Unlock()
}

func decodeChangePayload(payload string) (models.ChangeEvent, error) {
	var p changePayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return models.ChangeEvent{}, fmt.Errorf("%w: %w", ErrInvalidChangePayload, err)
	}

	changeType, ok := models.ParseChangeType(p.Type)
	if !ok || changeType == models.ChangeAny || changeType == models.ChangeResync {
		return models.ChangeEvent{}, fmt.Errorf("%w: unknown change type %q", ErrInvalidChangePayload, p.Type)
	}
	if p.Table == "" {
		return models.ChangeEvent{}, fmt.Errorf("%w: missing table", ErrInvalidChangePayload)
	}

	return models.ChangeEvent{
		Type:       changeType,
		Table:      p.Table,
		DriverName: p.DriverName,
		RecordID:   p.ID,
	}, nil
}
