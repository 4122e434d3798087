// Package task runs one asynchronous collaborator call and hands back its
// result. Each task carries the identity of what it belongs to (an
// assessment attempt, a session) so callers can drop results that arrive
// after their owner was superseded.
package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Task is a single in-flight call producing a T.
type Task[T any] struct {
	owner  uuid.UUID
	cancel context.CancelFunc
	done   chan struct{}

	once  sync.Once
	value T
	err   error
}

// Go starts fn in a new goroutine. The context passed to fn is cancelled by
// Cancel or when ctx is done.
func Go[T any](ctx context.Context, owner uuid.UUID, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		owner:  owner,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer cancel()
		v, err := fn(ctx)
		t.finish(v, err)
	}()
	return t
}

func (t *Task[T]) finish(v T, err error) {
	t.once.Do(func() {
		t.value, t.err = v, err
		close(t.done)
	})
}

// Owner is the identity the task was started for.
func (t *Task[T]) Owner() uuid.UUID { return t.owner }

// Done is closed once the result is available.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finishes or ctx is done.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome without blocking. ok is false while the task
// is still running.
func (t *Task[T]) Result() (v T, ok bool, err error) {
	select {
	case <-t.done:
		return t.value, true, t.err
	default:
		return v, false, nil
	}
}

// Cancel asks fn to stop. The task still completes with whatever fn
// returns, usually context.Canceled.
func (t *Task[T]) Cancel() { t.cancel() }
