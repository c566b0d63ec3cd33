// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if traceID != "trace-1" {
		t.Errorf("expected 'trace-1', got '%s'", traceID)
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	_, ok := GetTraceIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetTraceIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "")

	_, ok := GetTraceIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for empty trace id")
	}
}
