package demokit

import (
	"context"
	"io"
	"os"
)

// Option represents a functional option for configuring a Runner.
type Option func(*Runner) error

// WithOutput sets the narration writer.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) error {
		if w == nil {
			return ErrOutputNil
		}
		r.out = w
		return nil
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			return ErrLoggerNil
		}
		r.logger = logger
		return nil
	}
}

// WithDelayScale sets how much real time a simulated delay takes.
// 0 means none; 1 means real time.
func WithDelayScale(scale float64) Option {
	return func(r *Runner) error {
		if scale < 0 {
			return NewValidationError("delay scale", scale, "must not be negative")
		}
		r.delayScale = scale
		return nil
	}
}

// WithObserver registers observers for lifecycle events. Observers are
// notified in registration order.
func WithObserver(observers ...Observer) Option {
	return func(r *Runner) error {
		r.observers = append(r.observers, observers...)
		return nil
	}
}

// WithConfig applies the runner-related settings of cfg.
func WithConfig(cfg *Config) Option {
	return func(r *Runner) error {
		if cfg == nil {
			return ErrConfigNil
		}
		return WithDelayScale(cfg.DelayScale)(r)
	}
}

// Main runs lesson on stdout with warn-level logs on stderr and returns the
// process exit code. Every cmd/<lesson> executable is a thin wrapper around it.
func Main(lesson Lesson) int {
	logger := NewLogger("warn", "text", os.Stderr)

	runner, err := NewRunner(WithOutput(os.Stdout), WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create runner", "error", err)
		return 1
	}

	if err := runner.Run(context.Background(), lesson); err != nil {
		logger.Error("Lesson aborted", "lesson", lesson.Name(), "error", err)
		return 1
	}
	return 0
}
