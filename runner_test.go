package demokit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStep = errors.New("step exploded")

type scriptedLesson struct {
	steps []Step
}

func (l scriptedLesson) Name() string  { return "scripted" }
func (l scriptedLesson) Title() string { return "Scripted Lesson" }
func (l scriptedLesson) Steps() []Step { return l.steps }

func newTestRunner(t *testing.T, opts ...Option) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRunner(append([]Option{WithOutput(&buf)}, opts...)...)
	require.NoError(t, err)
	return r, &buf
}

func TestRunner_Transcript(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	lesson := scriptedLesson{steps: []Step{
		{Title: "Greeting", Run: func(_ context.Context, r *Runner) error {
			r.Say("Hello, %s!", "world")
			return nil
		}},
		{Title: "Listing", Run: func(_ context.Context, r *Runner) error {
			r.List("Items", []string{"a", "b"})
			r.Bullet("detail %d", 1)
			return nil
		}},
	}}

	require.NoError(t, r.Run(context.Background(), lesson))

	want := strings.Join([]string{
		"=== Scripted Lesson ===",
		"",
		"1. Greeting",
		"Hello, world!",
		"",
		"2. Listing",
		"Items: [a, b]",
		"  - detail 1",
		"",
		"=== Done: Scripted Lesson ===",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRunner_ContainsFailures(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	ran := false
	lesson := scriptedLesson{steps: []Step{
		{Title: "Returns error", Run: func(context.Context, *Runner) error { return errStep }},
		{Title: "Panics", Run: func(context.Context, *Runner) error { panic("kaboom") }},
		{Title: "Still runs", Run: func(context.Context, *Runner) error {
			ran = true
			return nil
		}},
	}}

	require.NoError(t, r.Run(context.Background(), lesson))
	assert.True(t, ran)
	assert.Equal(t, 2, r.Failures())
	assert.Contains(t, buf.String(), "Error: step exploded\n")
	assert.Contains(t, buf.String(), "Error: step panicked: kaboom\n")
	assert.Contains(t, buf.String(), "=== Done: Scripted Lesson ===")
}

func TestRunner_Try(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	assert.True(t, r.Try(func() error { return nil }))
	assert.False(t, r.Try(func() error { return NewValidationError("age", -5, "must not be negative") }))
	assert.Equal(t, "Error: invalid age -5: must not be negative\n", buf.String())
}

func TestRunner_CompletionGatedOnDelays(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	lesson := scriptedLesson{steps: []Step{
		{Title: "Schedule", Run: func(_ context.Context, r *Runner) error {
			r.Loop().After(time.Second, func() { r.Say("slow callback") })
			r.Loop().After(10*time.Millisecond, func() { r.Say("fast callback") })
			r.Say("scheduled")
			return nil
		}},
	}}

	require.NoError(t, r.Run(context.Background(), lesson))

	out := buf.String()
	assert.Less(t, strings.Index(out, "scheduled"), strings.Index(out, "fast callback"))
	assert.Less(t, strings.Index(out, "fast callback"), strings.Index(out, "slow callback"))
	assert.Less(t, strings.Index(out, "slow callback"), strings.Index(out, "=== Done"))
	assert.Zero(t, r.Loop().Pending())
}

func TestRunner_FailedStepTimersFireUnderItsHeader(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	lesson := scriptedLesson{steps: []Step{
		{Title: "Schedule then fail", Run: func(_ context.Context, r *Runner) error {
			r.Loop().After(time.Second, func() { r.Say("leftover timer") })
			return errStep
		}},
		{Title: "Next", Run: func(_ context.Context, r *Runner) error {
			r.Loop().After(time.Millisecond, func() { r.Say("next timer") })
			return r.Wait(context.Background())
		}},
	}}

	require.NoError(t, r.Run(context.Background(), lesson))

	out := buf.String()
	assert.Less(t, strings.Index(out, "Error: step exploded"), strings.Index(out, "leftover timer"))
	assert.Less(t, strings.Index(out, "leftover timer"), strings.Index(out, "2. Next"))
	assert.Less(t, strings.Index(out, "2. Next"), strings.Index(out, "next timer"))
}

func TestRunner_FreshClockPerLesson(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	lesson := scriptedLesson{steps: []Step{
		{Title: "Tick", Run: func(ctx context.Context, r *Runner) error {
			loop := r.Loop()
			loop.After(300*time.Millisecond, func() { r.Say("tick at %v", loop.Elapsed()) })
			return r.Wait(ctx)
		}},
	}}

	require.NoError(t, r.RunAll(context.Background(), lesson, lesson))
	assert.Equal(t, 2, strings.Count(buf.String(), "tick at 300ms"))
	assert.NotContains(t, buf.String(), "tick at 600ms")
}

func TestRunner_CallbackPanicIsReported(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	lesson := scriptedLesson{steps: []Step{
		{Title: "Bad timer", Run: func(_ context.Context, r *Runner) error {
			r.Loop().After(time.Millisecond, func() { panic("late failure") })
			return nil
		}},
	}}

	require.NoError(t, r.Run(context.Background(), lesson))
	assert.Contains(t, buf.String(), "Error: callback panicked: late failure")
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()
	r, _ := newTestRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	lesson := scriptedLesson{steps: []Step{
		{Title: "Cancel", Run: func(ctx context.Context, _ *Runner) error {
			cancel()
			return ctx.Err()
		}},
		{Title: "Never", Run: func(context.Context, *Runner) error {
			t.Error("step after cancellation must not run")
			return nil
		}},
	}}

	assert.ErrorIs(t, r.Run(ctx, lesson), context.Canceled)
}

func TestRunner_Observers(t *testing.T) {
	t.Parallel()

	var types []string
	var failed StepEventData
	observer := NewFunctionalObserver("recorder", func(_ context.Context, event cloudevents.Event) error {
		types = append(types, event.Type())
		if event.Type() == EventTypeStepFailed {
			require.NoError(t, event.DataAs(&failed))
		}
		return nil
	})
	failing := NewFunctionalObserver("failing", func(context.Context, cloudevents.Event) error {
		return errStep
	})

	r, _ := newTestRunner(t, WithObserver(failing, observer))
	lesson := scriptedLesson{steps: []Step{
		{Title: "ok", Run: func(context.Context, *Runner) error { return nil }},
		{Title: "bad", Run: func(context.Context, *Runner) error { return errStep }},
	}}

	require.NoError(t, r.Run(context.Background(), lesson))
	assert.Equal(t, []string{
		EventTypeLessonStarted,
		EventTypeStepStarted,
		EventTypeStepStarted,
		EventTypeStepFailed,
		EventTypeLessonCompleted,
	}, types)
	assert.Equal(t, StepEventData{Lesson: "scripted", Number: 2, Title: "bad", Error: "step exploded"}, failed)
}

func TestRunner_RunAll(t *testing.T) {
	t.Parallel()
	r, buf := newTestRunner(t)

	one := scriptedLesson{steps: []Step{{Title: "one", Run: nil}}}
	require.NoError(t, r.RunAll(context.Background(), one, one))
	assert.Equal(t, 2, strings.Count(buf.String(), "=== Done: Scripted Lesson ==="))
	assert.ErrorIs(t, r.Run(context.Background(), nil), ErrLessonNil)
}

func TestNewRunner_Options(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(WithOutput(nil))
	assert.ErrorIs(t, err, ErrOutputNil)

	_, err = NewRunner(WithLogger(nil))
	assert.ErrorIs(t, err, ErrLoggerNil)

	_, err = NewRunner(WithDelayScale(-1))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewRunner(WithConfig(nil))
	assert.ErrorIs(t, err, ErrConfigNil)

	r, err := NewRunner(WithConfig(&Config{DelayScale: 0}), WithLogger(NewLogger("debug", "json", &bytes.Buffer{})))
	require.NoError(t, err)
	assert.NotNil(t, r.Loop())
	assert.NotNil(t, r.Logger())
}
