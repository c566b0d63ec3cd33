// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// statusClientClosedRequest is the non-standard status logged when the
// client went away before the response was ready.
const statusClientClosedRequest = 499

var (
	// ErrEmptyDriver is reported when the driver path segment is blank.
	ErrEmptyDriver = errors.New("driver is required")

	// ErrSyncNotConfigured is reported when no notification backend is
	// configured, so a stream would never receive data.
	ErrSyncNotConfigured = errors.New("notification sync is not configured")
)
