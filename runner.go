package demokit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Lesson is one self-contained demonstration: a fixed, ordered script of
// steps narrated to the Runner's output.
type Lesson interface {
	// Name is the short identifier used by the catalog and the CLI.
	Name() string

	// Title is printed in the lesson banner.
	Title() string

	// Steps returns the demonstration steps in execution order.
	Steps() []Step
}

// Step is one numbered demonstration step.
type Step struct {
	Title string
	Run   func(ctx context.Context, r *Runner) error
}

// Runner executes lessons. It prints narration to its output, contains step
// failures so they never abort later steps, and gates completion on every
// simulated delay having fired.
type Runner struct {
	out        io.Writer
	logger     Logger
	loop       *EventLoop
	observers  []Observer
	delayScale float64

	lesson string
	failed int
}

// NewRunner creates a Runner writing to stdout with logging disabled, then
// applies opts in order.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{
		out:    os.Stdout,
		logger: discardLogger{},
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.resetLoop()
	return r, nil
}

// resetLoop gives the runner a fresh event loop whose clock starts at zero.
func (r *Runner) resetLoop() {
	r.loop = NewEventLoop(r.delayScale)
	r.loop.SetPanicHandler(func(recovered any) {
		r.failed++
		r.Fail(fmt.Errorf("callback panicked: %v", recovered))
		r.logger.Warn("Timer callback panicked", "lesson", r.lesson, "panic", recovered)
	})
}

// Run executes every step of lesson in order on a fresh event loop. A step
// that returns an error or panics is reported as an "Error: ..." line and the
// next step runs. Timers a step left pending fire before the next step
// starts. Only context cancellation stops the run early.
func (r *Runner) Run(ctx context.Context, lesson Lesson) error {
	if lesson == nil {
		return ErrLessonNil
	}

	steps := lesson.Steps()
	r.lesson = lesson.Name()
	r.failed = 0
	r.resetLoop()

	r.Say("=== %s ===", lesson.Title())
	r.logger.Debug("Lesson started", "lesson", r.lesson, "steps", len(steps))
	r.emit(ctx, EventTypeLessonStarted, LessonEventData{Lesson: r.lesson, Title: lesson.Title(), Steps: len(steps)})

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		number := i + 1
		r.Line()
		r.Say("%d. %s", number, step.Title)
		r.logger.Debug("Step started", "lesson", r.lesson, "step", number, "title", step.Title)
		r.emit(ctx, EventTypeStepStarted, StepEventData{Lesson: r.lesson, Number: number, Title: step.Title})

		if err := r.runStep(ctx, step); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return err
			}
			r.failed++
			r.Fail(err)
			r.logger.Warn("Step failed", "lesson", r.lesson, "step", number, "error", err)
			r.emit(ctx, EventTypeStepFailed, StepEventData{Lesson: r.lesson, Number: number, Title: step.Title, Error: err.Error()})
		}

		if err := r.loop.Wait(ctx); err != nil {
			return err
		}
	}

	r.Line()
	r.Say("=== Done: %s ===", lesson.Title())
	r.logger.Debug("Lesson completed", "lesson", r.lesson, "failed", r.failed)
	r.emit(ctx, EventTypeLessonCompleted, LessonEventData{Lesson: r.lesson, Title: lesson.Title(), Steps: len(steps), Failed: r.failed})

	return nil
}

// RunAll runs lessons one after another, separated by a blank line.
func (r *Runner) RunAll(ctx context.Context, lessons ...Lesson) error {
	for i, lesson := range lessons {
		if i > 0 {
			r.Line()
		}
		if err := r.Run(ctx, lesson); err != nil {
			return fmt.Errorf("lesson %s: %w", lesson.Name(), err)
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("step panicked: %v", recovered)
		}
	}()

	if step.Run == nil {
		return nil
	}
	return step.Run(ctx, r)
}

// Say prints a formatted narration line.
func (r *Runner) Say(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Line prints its operands like fmt.Println.
func (r *Runner) Line(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Bullet prints an indented list item.
func (r *Runner) Bullet(format string, args ...any) {
	fmt.Fprintf(r.out, "  - "+format+"\n", args...)
}

// Fail prints err as an "Error: ..." line.
func (r *Runner) Fail(err error) {
	fmt.Fprintf(r.out, "Error: %v\n", err)
}

// Try runs fn and contains its failure locally: the error is printed and
// Try reports false.
func (r *Runner) Try(fn func() error) bool {
	if err := fn(); err != nil {
		r.Fail(err)
		return false
	}
	return true
}

// List prints items joined with ", " after label.
func (r *Runner) List(label string, items []string) {
	r.Say("%s: [%s]", label, strings.Join(items, ", "))
}

// Loop returns the Runner's event loop.
func (r *Runner) Loop() *EventLoop {
	return r.loop
}

// Wait fires every pending simulated delay.
func (r *Runner) Wait(ctx context.Context) error {
	return r.loop.Wait(ctx)
}

// Output returns the narration writer.
func (r *Runner) Output() io.Writer {
	return r.out
}

// Logger returns the diagnostic logger.
func (r *Runner) Logger() Logger {
	return r.logger
}

// Failures returns the number of failed steps in the current lesson.
func (r *Runner) Failures() int {
	return r.failed
}

// emit notifies observers synchronously so the event order matches the
// transcript. Observer errors and panics are logged only.
func (r *Runner) emit(ctx context.Context, eventType string, data any) {
	if len(r.observers) == 0 {
		return
	}

	event := NewCloudEvent(eventType, "demokit/"+r.lesson, data, nil)
	if err := ValidateCloudEvent(event); err != nil {
		r.logger.Error("Invalid CloudEvent", "eventType", eventType, "error", err)
		return
	}

	for _, observer := range r.observers {
		r.notify(ctx, observer, event)
	}
}

func (r *Runner) notify(ctx context.Context, observer Observer, event cloudevents.Event) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("Observer panicked", "observerID", observer.ObserverID(), "event", event.Type(), "panic", recovered)
		}
	}()

	if err := observer.OnEvent(ctx, event); err != nil {
		r.logger.Error("Observer error", "observerID", observer.ObserverID(), "event", event.Type(), "error", err)
	}
}
