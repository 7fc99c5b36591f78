// Package closures shows functions that capture variables from the scope
// they were created in: counters with private state, function factories,
// per-iteration captures, memoization and run-once guards.
package closures

import (
	"strings"
	"sync"
)

// Counter is a set of closures sharing one private count.
type Counter struct {
	Increment func() int
	Decrement func() int
	Value     func() int
}

// NewCounter returns closures over a count that starts at start. Nothing
// outside the returned functions can reach the count.
func NewCounter(start int) Counter {
	count := start
	return Counter{
		Increment: func() int { count++; return count },
		Decrement: func() int { count--; return count },
		Value:     func() int { return count },
	}
}

// Adder returns a function adding n to its argument.
func Adder(n int) func(int) int {
	return func(x int) int { return x + n }
}

// Multiplier returns a function multiplying its argument by factor.
func Multiplier(factor int) func(int) int {
	return func(x int) int { return x * factor }
}

// Greeter returns a function that greets a name with greeting.
func Greeter(greeting string) func(name string) string {
	return func(name string) string { return greeting + ", " + name + "!" }
}

// Capture builds one closure per index. Each closure reports the index of
// the iteration that created it.
func Capture(n int) []func() int {
	fns := make([]func() int, 0, n)
	for i := range n {
		fns = append(fns, func() int { return i })
	}
	return fns
}

// SharedCapture builds n closures that all read the same variable, which
// ends at n after the loop.
func SharedCapture(n int) []func() int {
	shared := 0
	fns := make([]func() int, 0, n)
	for shared = 0; shared < n; shared++ {
		fns = append(fns, func() int { return shared })
	}
	return fns
}

// Memoize caches fn's results by argument. The returned hits func reports
// how many calls were answered from the cache.
func Memoize[K comparable, V any](fn func(K) V) (memo func(K) V, hits func() int) {
	cache := make(map[K]V)
	hit := 0
	memo = func(k K) V {
		if v, ok := cache[k]; ok {
			hit++
			return v
		}
		v := fn(k)
		cache[k] = v
		return v
	}
	return memo, func() int { return hit }
}

// Once wraps fn so that only the first call runs it. Later calls return the
// first result.
func Once[T any](fn func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() { result = fn() })
		return result
	}
}

// Accumulator keeps a running total behind Add, Total and Reset.
type Accumulator struct {
	Add   func(int) int
	Total func() int
	Reset func()
}

// NewAccumulator returns an accumulator starting at zero.
func NewAccumulator() Accumulator {
	total := 0
	return Accumulator{
		Add:   func(n int) int { total += n; return total },
		Total: func() int { return total },
		Reset: func() { total = 0 },
	}
}

// Tagger returns a closure that records every message it is given under tag
// and returns the whole log so far.
func Tagger(tag string) func(msg string) []string {
	var log []string
	return func(msg string) []string {
		log = append(log, "["+tag+"] "+msg)
		return append([]string(nil), log...)
	}
}

// Shout, Whisper and Exclaim are one-line function values.
var (
	Shout   = func(s string) string { return strings.ToUpper(s) }
	Whisper = func(s string) string { return strings.ToLower(s) + "..." }
	Exclaim = func(s string) string { return s + "!" }
)
