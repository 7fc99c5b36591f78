// Package demokit runs self-contained demonstration lessons.
//
// A Lesson is a fixed, ordered script of Steps. The Runner narrates each step
// to its output, contains any failure a step raises so later steps still run,
// drives a simulated-latency EventLoop, and notifies Observers about the
// lesson lifecycle using CloudEvents.
package demokit

import (
	"context"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Observer defines the interface for objects that want to be notified of
// lesson lifecycle events.
type Observer interface {
	// OnEvent is called for every lifecycle event the Runner emits.
	// A returned error is logged and otherwise ignored.
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID returns a unique identifier for this observer.
	ObserverID() string
}

// EventType constants for lesson lifecycle events, in reverse domain notation.
const (
	EventTypeLessonStarted   = "com.demokit.lesson.started"
	EventTypeLessonCompleted = "com.demokit.lesson.completed"
	EventTypeStepStarted     = "com.demokit.step.started"
	EventTypeStepFailed      = "com.demokit.step.failed"
)

// FunctionalObserver adapts a plain function to the Observer interface.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

// NewFunctionalObserver creates an observer that calls handler for each event.
func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) Observer {
	return &FunctionalObserver{
		id:      id,
		handler: handler,
	}
}

// OnEvent implements Observer.
func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	return f.handler(ctx, event)
}

// ObserverID implements Observer.
func (f *FunctionalObserver) ObserverID() string {
	return f.id
}

// StepEventData is the payload of step events.
type StepEventData struct {
	Lesson string `json:"lesson"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Error  string `json:"error,omitempty"`
}

// LessonEventData is the payload of lesson events.
type LessonEventData struct {
	Lesson string `json:"lesson"`
	Title  string `json:"title"`
	Steps  int    `json:"steps"`
	Failed int    `json:"failed,omitempty"`
}
