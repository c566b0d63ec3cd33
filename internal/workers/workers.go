package workers

import (
	"context"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	ws := &Workers{logger: logger}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker concurrently and blocks until all of them return.
// The first failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil && w.logger != nil {
		w.logger.Err(err).Str("func", "Workers.Run").Msg("worker stopped with error")
	}
	return err
}

// Len reports how many workers the group runs.
func (w *Workers) Len() int {
	return len(w.workers)
}
