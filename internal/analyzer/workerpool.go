package analyzer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool runs tasks on a fixed number of goroutines.
type WorkerPool struct {
	tasks chan Task
	wg    sync.WaitGroup
	once  sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker(i)
	}
	return wp
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Analyzer task failed", zap.Int("worker", id), zap.Error(err))
		}
	}
}

// AddTask blocks until a worker slot is free or ctx is done.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish. It must
// not race with AddTask.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.tasks)
	})
	wp.wg.Wait()
}
