// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to a hosted PostgREST
// endpoint in front of the fleet database.
//
// [NewPostgRESTAdapter] implements the select_all half of the notification
// backend over HTTP: it translates a [models.SelectQuery] into PostgREST's
// query-string grammar and authenticates with a short-lived role token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter
