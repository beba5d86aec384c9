package analyzer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failing    int
	}{
		{
			name:       "runs every task",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:       "failing task does not stop the pool",
			numTasks:   4,
			numWorkers: 2,
			failing:    1,
		},
		{
			name:       "single worker",
			numTasks:   3,
			numWorkers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed, failed atomic.Int32
			for i := 0; i < tt.numTasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					if i < tt.failing {
						failed.Add(1)
						return assert.AnError
					}
					time.Sleep(10 * time.Millisecond)
					executed.Add(1)
					return nil
				})
				require.NoError(t, err, "failed to add task to pool")
			}

			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.failing), executed.Load())
			assert.Equal(t, int32(tt.failing), failed.Load())
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	// Fill the buffer so the next send has to wait.
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task should not run")
		return nil
	})
	close(block)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
