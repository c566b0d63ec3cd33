package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/fleet-notify/models"
)

const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldTable     = "table"
	FieldFilter    = "filter"
	FieldDirection = "direction"
)

// MaxUsernameLength bounds the driver name accepted on login.
const MaxUsernameLength = 64

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginForm:
		return v.validateLoginForm(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLoginForm(ctx, *value, fields...)

	case models.SelectQuery:
		return v.validateSelectQuery(ctx, value, fields...)
	case *models.SelectQuery:
		return v.validateSelectQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLoginForm(_ context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			username := strings.TrimSpace(form.Username)
			if username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateSelectQuery(_ context.Context, query models.SelectQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTable, FieldFilter, FieldDirection}
	}

	for _, field := range fields {
		switch field {
		case FieldTable:
			if strings.TrimSpace(query.Table) == "" {
				return ErrEmptyTable
			}
		case FieldFilter:
			// an unfiltered query selects the whole table
			if query.Filter.Field != "" && query.Filter.Value == "" {
				return fmt.Errorf("%w: %s", ErrEmptyFilterValue, query.Filter.Field)
			}
		case FieldDirection:
			switch query.Direction {
			case "", models.Ascending, models.Descending:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidDirection, query.Direction)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
