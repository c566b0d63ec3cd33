// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inputs before they reach storage or a remote
// backend.
//
// A [Validator] accepts any supported value and, optionally, a list of field
// names that restricts which rules run. Unsupported types yield
// [ErrUnsupportedType]; unknown field names yield [ErrUnknownField].
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
