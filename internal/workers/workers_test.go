// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.started.Add(1)
	<-ctx.Done()
	b.stopped.Add(1)
	return nil
}

type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func runAsync(ctx context.Context, ws *Workers) <-chan error {
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()
	return done
}

func TestWorkers_Run_AllWorkersStartAndStopOnCancel(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(logger.Nop(), w1, w2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, ws)

	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
	assert.Equal(t, int32(1), w1.stopped.Load())
	assert.Equal(t, int32(1), w2.stopped.Load())
}

func TestWorkers_Run_FailureStopsSiblings(t *testing.T) {
	boom := errors.New("listen: connection refused")
	sibling := &blockingWorker{}
	ws := NewWorkers(logger.Nop(), sibling, &failingWorker{err: boom})

	select {
	case err := <-runAsync(context.Background(), ws):
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("failure did not stop the group")
	}
	assert.Equal(t, int32(1), sibling.stopped.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())
	assert.Equal(t, 0, ws.Len())
	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	ws := NewWorkers(logger.Nop(), nil, &blockingWorker{}, nil)
	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_Run_ZeroValue(t *testing.T) {
	ws := &Workers{}
	assert.NoError(t, ws.Run(context.Background()))
}
