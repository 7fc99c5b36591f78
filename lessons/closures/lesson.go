package closures

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the closures demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "closures" }
func (Lesson) Title() string { return "Closures and Function Literals" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Counter with private state", Run: l.counter},
		{Title: "Function factories", Run: l.factories},
		{Title: "Capturing loop variables", Run: l.capture},
		{Title: "Memoization", Run: l.memoize},
		{Title: "Run once", Run: l.once},
		{Title: "Accumulator with reset", Run: l.accumulator},
		{Title: "Closures that remember a log", Run: l.tagger},
		{Title: "One-line function literals", Run: l.oneLiners},
		{Title: "Closures in delayed callbacks", Run: l.delayed},
	}
}

func (Lesson) counter(_ context.Context, r *demokit.Runner) error {
	a := NewCounter(0)
	b := NewCounter(10)

	a.Increment()
	a.Increment()
	b.Decrement()

	r.Say("Counter A: %d", a.Value())
	r.Say("Counter B: %d", b.Value())
	r.Say("Each counter keeps its own state")
	return nil
}

func (Lesson) factories(_ context.Context, r *demokit.Runner) error {
	addFive := Adder(5)
	triple := Multiplier(3)
	hello := Greeter("Hello")
	hola := Greeter("Hola")

	r.Say("addFive(10) = %d", addFive(10))
	r.Say("triple(7) = %d", triple(7))
	r.Say("triple(addFive(1)) = %d", triple(addFive(1)))
	r.Say("%s", hello("Ada"))
	r.Say("%s", hola("Grace"))
	return nil
}

func (Lesson) capture(_ context.Context, r *demokit.Runner) error {
	var own, shared []int
	for _, fn := range Capture(3) {
		own = append(own, fn())
	}
	for _, fn := range SharedCapture(3) {
		shared = append(shared, fn())
	}

	r.Say("Per-iteration variables: %v", own)
	r.Say("One shared variable: %v", shared)
	return nil
}

func (Lesson) memoize(_ context.Context, r *demokit.Runner) error {
	computed := 0
	square, hits := Memoize(func(n int) int {
		computed++
		return n * n
	})

	for _, n := range []int{4, 5, 4, 4} {
		r.Say("square(%d) = %d", n, square(n))
	}
	r.Say("Computed %d time(s), served %d from cache", computed, hits())
	return nil
}

func (Lesson) once(_ context.Context, r *demokit.Runner) error {
	connects := 0
	connect := Once(func() string {
		connects++
		return "connection #1"
	})

	r.Say("First call: %s", connect())
	r.Say("Second call: %s", connect())
	r.Say("Initializer ran %d time(s)", connects)
	return nil
}

func (Lesson) accumulator(_ context.Context, r *demokit.Runner) error {
	acc := NewAccumulator()
	for _, n := range []int{10, 20, 5} {
		acc.Add(n)
	}
	r.Say("Total after adding 10, 20, 5: %d", acc.Total())

	acc.Reset()
	r.Say("Total after reset: %d", acc.Total())
	r.Say("Total after adding 7: %d", acc.Add(7))
	return nil
}

func (Lesson) tagger(_ context.Context, r *demokit.Runner) error {
	audit := Tagger("audit")
	audit("user logged in")
	log := audit("settings changed")

	for _, entry := range log {
		r.Bullet("%s", entry)
	}
	return nil
}

func (Lesson) oneLiners(_ context.Context, r *demokit.Runner) error {
	words := []string{"go", "closures", "rock"}

	transforms := []struct {
		name string
		fn   func(string) string
	}{
		{"Shout", Shout},
		{"Whisper", Whisper},
		{"Exclaim", Exclaim},
	}
	for _, tr := range transforms {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = tr.fn(w)
		}
		r.List(tr.name, out)
	}

	sorted := slices.Clone(words)
	slices.SortFunc(sorted, func(a, b string) int { return len(a) - len(b) })
	r.List("Sorted by length", sorted)

	long := slices.DeleteFunc(slices.Clone(words), func(w string) bool { return len(w) < 4 })
	r.Say("Words with 4+ letters: %s", strings.Join(long, ", "))
	return nil
}

func (Lesson) delayed(ctx context.Context, r *demokit.Runner) error {
	loop := r.Loop()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		delay := time.Duration(len(name)) * 100 * time.Millisecond
		loop.After(delay, func() {
			r.Say("Timer for %s fired at %v", name, loop.Elapsed())
		})
	}
	r.Say("Scheduled 3 timers, each remembers its own name")
	return r.Wait(ctx)
}
