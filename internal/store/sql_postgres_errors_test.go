package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: Retryable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "wrapped cannot connect now", err: fmt.Errorf("dial: %w", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}), want: Retryable},
		{name: "invalid password", err: &pgconn.PgError{Code: pgerrcode.InvalidPassword}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
		{name: "unknown code", err: &pgconn.PgError{Code: "XX999"}, want: NonRetryable},
		{name: "network error", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), want: Retryable},
		{name: "context canceled", err: fmt.Errorf("wait: %w", context.Canceled), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, "", postgresError(errors.New("plain")))
}
