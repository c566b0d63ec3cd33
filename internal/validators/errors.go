package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTable       = errors.New("table is required")
	ErrEmptyFilterValue = errors.New("filter value is required")
	ErrInvalidDirection = errors.New("invalid sort direction")
)
