// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/fleet-notify/models"
	"github.com/stretchr/testify/assert"
)

func TestRequestValidator_LoginForm(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		form    any
		fields  []string
		wantErr error
	}{
		{name: "valid", form: models.LoginForm{Username: "omar", Password: "pw"}},
		{name: "valid pointer", form: &models.LoginForm{Username: "omar", Password: "pw", Remember: true}},
		{name: "blank username", form: models.LoginForm{Username: "  ", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "empty password", form: models.LoginForm{Username: "omar"}, wantErr: ErrEmptyPassword},
		{name: "username too long", form: models.LoginForm{Username: strings.Repeat("a", MaxUsernameLength+1), Password: "pw"}, wantErr: ErrUsernameTooLong},
		{name: "username only", form: models.LoginForm{Username: "omar"}, fields: []string{FieldUsername}},
		{name: "unknown field", form: models.LoginForm{Username: "omar", Password: "pw"}, fields: []string{"remember"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.form, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_SelectQuery(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   any
		fields  []string
		wantErr error
	}{
		{name: "driver query", query: models.DriverNotificationsQuery("omar")},
		{name: "pointer", query: &models.SelectQuery{Table: models.NotificationsTable}},
		{name: "empty table", query: models.SelectQuery{}, wantErr: ErrEmptyTable},
		{
			name:    "filter without value",
			query:   models.SelectQuery{Table: models.NotificationsTable, Filter: models.Filter{Field: models.NotificationDriverField}},
			wantErr: ErrEmptyFilterValue,
		},
		{
			name:    "bad direction",
			query:   models.SelectQuery{Table: models.NotificationsTable, Direction: "sideways"},
			wantErr: ErrInvalidDirection,
		},
		{name: "table only ignores direction", query: models.SelectQuery{Table: "t", Direction: "sideways"}, fields: []string{FieldTable}},
		{name: "unknown field", query: models.SelectQuery{Table: "t"}, fields: []string{"limit"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.query, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.Notification{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
