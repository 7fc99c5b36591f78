package demokit

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// EventLoop simulates latency on a virtual clock.
//
// Callbacks registered with After never run on their own: they fire, one at a
// time and on the caller's goroutine, while Wait or Future.Await drives the
// loop. Timers fire in due-time order, and timers that fall due at the same
// instant fire in registration order, so a shorter delay always fires before a
// longer one that was registered at the same moment.
//
// With a zero scale no real time passes. A positive scale sleeps
// scale * (due - now) before each timer so a demo can be paced for a human.
type EventLoop struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	queue   timerQueue
	scale   float64
	onPanic func(recovered any)
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewEventLoop creates an empty loop. scale below zero is treated as zero.
func NewEventLoop(scale float64) *EventLoop {
	if scale < 0 {
		scale = 0
	}
	return &EventLoop{scale: scale}
}

// SetPanicHandler installs a hook that receives panics raised by timer
// callbacks. Without a hook the panic propagates to the goroutine driving
// the loop.
func (l *EventLoop) SetPanicHandler(fn func(recovered any)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onPanic = fn
}

// After schedules fn to run d after the current virtual time.
func (l *EventLoop) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	heap.Push(&l.queue, &timer{due: l.now + d, seq: l.seq, fn: fn})
}

// Pending returns the number of timers that have not fired yet.
func (l *EventLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Len()
}

// Elapsed returns the virtual time that has passed since the loop was created.
func (l *EventLoop) Elapsed() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// Wait fires timers until none are left, including timers scheduled by the
// callbacks it runs.
func (l *EventLoop) Wait(ctx context.Context) error {
	for {
		fired, err := l.fireNext(ctx)
		if err != nil {
			return err
		}
		if !fired {
			return nil
		}
	}
}

// fireNext pops and runs the earliest timer. It reports false when the queue
// is empty.
func (l *EventLoop) fireNext(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	l.mu.Lock()
	if l.queue.Len() == 0 {
		l.mu.Unlock()
		return false, nil
	}
	next := heap.Pop(&l.queue).(*timer)
	gap := next.due - l.now
	scale := l.scale
	onPanic := l.onPanic
	l.mu.Unlock()

	if scale > 0 && gap > 0 {
		if err := sleepContext(ctx, time.Duration(float64(gap)*scale)); err != nil {
			return false, err
		}
	}

	l.mu.Lock()
	if next.due > l.now {
		l.now = next.due
	}
	l.mu.Unlock()

	runTimer(next.fn, onPanic)
	return true, nil
}

func runTimer(fn func(), onPanic func(any)) {
	if onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				onPanic(r)
			}
		}()
	}
	fn()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// timerQueue implements heap.Interface ordered by (due, seq).
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
