// Package advanced holds the illustrative helpers shared by several lessons:
// an event emitter, a stubbed HTTP client that answers on the simulated event
// loop, and a rule-based form validator.
package advanced

import (
	"fmt"
	"sync"
)

// Handler receives the payload of an emitted event.
type Handler func(payload any)

// ErrorHandler is a Handler that can report failure by returning an error.
type ErrorHandler func(payload any) error

// EventEmitter maps event names to handlers kept in registration order.
// The same handler may be registered more than once.
type EventEmitter struct {
	mu       sync.RWMutex
	handlers map[string][]ErrorHandler
	onError  func(event string, err error)
}

// NewEventEmitter creates an emitter with no handlers.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{handlers: make(map[string][]ErrorHandler)}
}

// On appends handler to the handlers of event.
func (e *EventEmitter) On(event string, handler Handler) {
	e.Handle(event, func(payload any) error {
		handler(payload)
		return nil
	})
}

// Handle appends an error-returning handler to the handlers of event.
func (e *EventEmitter) Handle(event string, handler ErrorHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[event] = append(e.handlers[event], handler)
}

// Off removes every handler of event.
func (e *EventEmitter) Off(event string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.handlers, event)
}

// OnError sets the hook that receives handler panics and returned errors.
// Without a hook they are dropped.
func (e *EventEmitter) OnError(fn func(event string, err error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onError = fn
}

// ListenerCount returns how many handlers event has.
func (e *EventEmitter) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers[event])
}

// Emit calls every handler of event synchronously, in registration order,
// with payload. A handler that panics or returns an error is reported to the
// error hook and the remaining handlers still run. Emitting an event without handlers does
// nothing. Emit returns the number of handlers that completed normally.
func (e *EventEmitter) Emit(event string, payload any) int {
	e.mu.RLock()
	handlers := append([]ErrorHandler(nil), e.handlers[event]...)
	onError := e.onError
	e.mu.RUnlock()

	report := func(err error) {
		if onError != nil {
			onError(event, err)
		}
	}

	completed := 0
	for _, handler := range handlers {
		var err error
		if !SafeCall(func() { err = handler(payload) }, report) {
			continue
		}
		if err != nil {
			report(err)
			continue
		}
		completed++
	}
	return completed
}

// SafeCall runs fn and converts a panic into an error passed to onError.
// It reports whether fn completed normally.
func SafeCall(fn func(), onError func(error)) (ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			ok = false
			if onError == nil {
				return
			}
			if err, isErr := recovered.(error); isErr {
				onError(err)
				return
			}
			onError(fmt.Errorf("%v", recovered))
		}
	}()

	fn()
	return true
}
