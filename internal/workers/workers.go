package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
