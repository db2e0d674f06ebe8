// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

package workers

import (
	"context"
	"testing"
)

// orderWorker records its ID into shared slices on Start and Stop.
type orderWorker struct {
	id      int
	started *[]int
	stopped *[]int
}

func (o *orderWorker) Start(context.Context) { *o.started = append(*o.started, o.id) }
func (o *orderWorker) Stop()                 { *o.stopped = append(*o.stopped, o.id) }

func TestWorkers_StartOrderAndReverseStop(t *testing.T) {
	var started, stopped []int
	ws := NewWorkers(
		&orderWorker{1, &started, &stopped},
		&orderWorker{2, &started, &stopped},
		&orderWorker{3, &started, &stopped},
	)

	ws.Start(context.Background())
	ws.Stop()

	wantStart := []int{1, 2, 3}
	wantStop := []int{3, 2, 1}
	for i := range wantStart {
		if started[i] != wantStart[i] {
			t.Errorf("expected started[%d]=%d, got %d", i, wantStart[i], started[i])
		}
		if stopped[i] != wantStop[i] {
			t.Errorf("expected stopped[%d]=%d, got %d", i, wantStop[i], stopped[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}
