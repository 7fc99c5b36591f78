// Package higherorder shows functions that take or return functions:
// generic Map/Filter/Reduce, composition, partial application, decorators and
// a retry combinator over simulated HTTP calls.
package higherorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
)

// ErrServiceUnavailable is what the flaky endpoint fails with.
var ErrServiceUnavailable = errors.New("service unavailable")

// Map returns fn applied to every element.
func Map[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// Filter returns the elements keep accepts, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce folds items into initial from left to right.
func Reduce[T, A any](items []T, initial A, fn func(acc A, item T) A) A {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Compose returns a function applying fns right to left.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe returns a function applying fns left to right.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Partial fixes the first argument of fn.
func Partial[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R { return fn(a, b) }
}

// Every reports whether pred holds for every element.
func Every[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element.
func Some[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

// GroupBy buckets items by key. Keys are returned in first-seen order.
func GroupBy[T any, K comparable](items []T, key func(T) K) (map[K][]T, []K) {
	groups := make(map[K][]T)
	var order []K
	for _, item := range items {
		k := key(item)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	return groups, order
}

// WithLogging decorates fn so every call and result is reported to logf.
func WithLogging[T, R any](name string, logf func(format string, args ...any), fn func(T) R) func(T) R {
	return func(arg T) R {
		logf("calling %s(%v)", name, arg)
		result := fn(arg)
		logf("%s returned %v", name, result)
		return result
	}
}

// Retry runs op until it succeeds or attempts run out, waiting backoff
// between attempts. onRetry, when set, sees every failed attempt that will be
// retried.
func Retry[T any](loop *demokit.EventLoop, attempts int, backoff time.Duration, op func(attempt int) *demokit.Future[T], onRetry func(attempt int, err error)) *demokit.Future[T] {
	result, resolve := demokit.NewPromise[T](loop)

	var try func(attempt int)
	try = func(attempt int) {
		op(attempt).Then(func(v T, err error) {
			if err == nil || attempt >= attempts {
				if err != nil {
					err = fmt.Errorf("giving up after %d attempt(s): %w", attempt, err)
				}
				resolve(v, err)
				return
			}
			if onRetry != nil {
				onRetry(attempt, err)
			}
			demokit.Sleep(loop, backoff).Then(func(struct{}, error) { try(attempt + 1) })
		})
	}
	try(1)

	return result
}

// FlakyGet returns an operation whose first failures attempts fail after
// latency, and which then delegates to client.
func FlakyGet(loop *demokit.EventLoop, client *advanced.HTTPClient, url string, failures int, latency time.Duration) func(attempt int) *demokit.Future[advanced.Response] {
	return func(attempt int) *demokit.Future[advanced.Response] {
		if attempt <= failures {
			return demokit.Delay(loop, latency, func() (advanced.Response, error) {
				return advanced.Response{}, ErrServiceUnavailable
			})
		}
		return client.Get(url)
	}
}

// FormCheck turns a validator into a function returning all failures joined.
func FormCheck(v *advanced.FormValidator) func(map[string]string) error {
	return func(values map[string]string) error {
		errs := v.Validate(values)
		if len(errs) == 0 {
			return nil
		}
		return fmt.Errorf("%w: %s", demokit.ErrValidation, strings.Join(errs, "; "))
	}
}

// Chain returns a check running every check in order and stopping at the
// first failure.
func Chain[T any](checks ...func(T) error) func(T) error {
	return func(v T) error {
		for _, check := range checks {
			if err := check(v); err != nil {
				return err
			}
		}
		return nil
	}
}
