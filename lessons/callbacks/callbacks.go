// Package callbacks shows functions passed as arguments: synchronous
// callbacks, callbacks fired later by the simulated event loop, an event
// emitter, and error containment around untrusted callbacks.
package callbacks

import (
	"errors"
	"fmt"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
)

// User is what FetchUser delivers.
type User struct {
	ID   int
	Name string
}

var directory = map[int]string{
	1: "Ada Lovelace",
	2: "Grace Hopper",
	3: "Alan Turing",
}

// ErrDivideByZero is raised by the divider callback in the safe-call demo.
var ErrDivideByZero = errors.New("cannot divide by zero")

// ProcessOrder does the work for order id, then hands a summary to onComplete.
func ProcessOrder(id int, items []string, onComplete func(summary string)) {
	summary := fmt.Sprintf("order #%d with %d item(s)", id, len(items))
	onComplete(summary)
}

// Transform applies fn to every value and returns the results.
func Transform(values []int, fn func(int) int) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

// FetchUser looks id up after delay and reports the result to cb. A miss is
// reported with found == false.
func FetchUser(loop *demokit.EventLoop, id int, delay time.Duration, cb func(user User, found bool)) {
	loop.After(delay, func() {
		name, ok := directory[id]
		if !ok {
			cb(User{}, false)
			return
		}
		cb(User{ID: id, Name: name}, true)
	})
}

// SafeCallback calls fn with input and contains a panic, handing it to
// onError instead of letting it propagate.
func SafeCallback[T, R any](fn func(T) R, input T, onError func(error)) (R, bool) {
	var result R
	ok := advanced.SafeCall(func() { result = fn(input) }, onError)
	return result, ok
}

// Divider returns a callback dividing its input into numerator. It panics
// with ErrDivideByZero on zero.
func Divider(numerator int) func(int) int {
	return func(d int) int {
		if d == 0 {
			panic(ErrDivideByZero)
		}
		return numerator / d
	}
}

// ValidateForm runs validator against values and calls exactly one of
// onValid or onInvalid.
func ValidateForm(validator *advanced.FormValidator, values map[string]string, onValid func(), onInvalid func(errs []string)) {
	if errs := validator.Validate(values); len(errs) > 0 {
		onInvalid(errs)
		return
	}
	onValid()
}

// RunSequence runs the named stages one after another, each taking stage
// of simulated time. onStage is called as each stage finishes, onDone after
// the last one.
func RunSequence(loop *demokit.EventLoop, stages []string, stage time.Duration, onStage func(name string), onDone func()) {
	if len(stages) == 0 {
		onDone()
		return
	}
	loop.After(stage, func() {
		onStage(stages[0])
		RunSequence(loop, stages[1:], stage, onStage, onDone)
	})
}
