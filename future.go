package demokit

import (
	"context"
	"time"
)

// Future is a value that becomes available once the EventLoop fires the
// timer that completes it. Futures are not safe for concurrent use; they are
// driven from the goroutine that runs the loop.
type Future[T any] struct {
	loop  *EventLoop
	done  bool
	value T
	err   error
	thens []func(T, error)
}

// Delay returns a Future that runs fn after d and completes with its result.
func Delay[T any](loop *EventLoop, d time.Duration, fn func() (T, error)) *Future[T] {
	f := &Future[T]{loop: loop}
	loop.After(d, func() {
		v, err := fn()
		f.complete(v, err)
	})
	return f
}

// Sleep returns a Future that completes after d with no value.
func Sleep(loop *EventLoop, d time.Duration) *Future[struct{}] {
	return Delay(loop, d, func() (struct{}, error) { return struct{}{}, nil })
}

// Resolved returns an already completed Future holding v.
func Resolved[T any](loop *EventLoop, v T) *Future[T] {
	return &Future[T]{loop: loop, done: true, value: v}
}

// Failed returns an already completed Future holding err.
func Failed[T any](loop *EventLoop, err error) *Future[T] {
	return &Future[T]{loop: loop, done: true, err: err}
}

// NewPromise returns a pending Future together with the function that
// completes it. Completing twice is a no-op.
func NewPromise[T any](loop *EventLoop) (*Future[T], func(T, error)) {
	f := &Future[T]{loop: loop}
	return f, f.complete
}

// Then registers fn to run when the Future completes. Continuations run in
// registration order; fn runs immediately if the Future is already complete.
func (f *Future[T]) Then(fn func(T, error)) *Future[T] {
	if f.done {
		fn(f.value, f.err)
		return f
	}
	f.thens = append(f.thens, fn)
	return f
}

// Done reports whether the Future has completed.
func (f *Future[T]) Done() bool {
	return f.done
}

// Await drives the loop until the Future completes. Timers due earlier than
// the one completing this Future fire first, exactly as they would in a
// single-threaded event loop.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	for !f.done {
		fired, err := f.loop.fireNext(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !fired {
			var zero T
			return zero, ErrNeverCompleted
		}
	}
	return f.value, f.err
}

func (f *Future[T]) complete(v T, err error) {
	if f.done {
		return
	}
	f.done = true
	f.value = v
	f.err = err

	thens := f.thens
	f.thens = nil
	for _, fn := range thens {
		fn(v, err)
	}
}

// Chain returns a Future completing with fn applied to f's value. Errors skip
// fn and pass straight through.
func Chain[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	next, resolve := NewPromise[U](f.loop)
	f.Then(func(v T, err error) {
		if err != nil {
			var zero U
			resolve(zero, err)
			return
		}
		resolve(fn(v))
	})
	return next
}

// All awaits every Future in order and returns their values. The first error
// stops the wait.
func All[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	values := make([]T, 0, len(futures))
	for _, f := range futures {
		v, err := f.Await(ctx)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
