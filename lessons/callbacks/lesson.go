package callbacks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
)

// Lesson is the callbacks demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "callbacks" }
func (Lesson) Title() string { return "Callbacks" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Basic callback", Run: l.basic},
		{Title: "Callback that returns a value", Run: l.transform},
		{Title: "Asynchronous callbacks", Run: l.async},
		{Title: "Event emitter", Run: l.emitter},
		{Title: "Failing handler does not stop the others", Run: l.failingHandler},
		{Title: "Safe callback", Run: l.safeCallback},
		{Title: "HTTP request with callbacks", Run: l.httpRequest},
		{Title: "Form validation callbacks", Run: l.formValidation},
		{Title: "Sequential asynchronous callbacks", Run: l.sequence},
	}
}

func (Lesson) basic(_ context.Context, r *demokit.Runner) error {
	r.Say("Processing order #1001...")
	ProcessOrder(1001, []string{"keyboard", "mouse"}, func(summary string) {
		r.Say("Callback received: %s is complete", summary)
	})
	return nil
}

func (Lesson) transform(_ context.Context, r *demokit.Runner) error {
	values := []int{1, 2, 3, 4}
	r.Say("Input: %v", values)
	r.Say("Doubled: %v", Transform(values, func(v int) int { return v * 2 }))
	r.Say("Squared: %v", Transform(values, func(v int) int { return v * v }))
	return nil
}

func (Lesson) async(ctx context.Context, r *demokit.Runner) error {
	loop := r.Loop()
	report := func(user User, found bool) {
		if !found {
			r.Say("User lookup finished at %v: not found", loop.Elapsed())
			return
		}
		r.Say("User %d (%s) loaded at %v", user.ID, user.Name, loop.Elapsed())
	}

	FetchUser(loop, 1, 800*time.Millisecond, report)
	FetchUser(loop, 2, 200*time.Millisecond, report)
	FetchUser(loop, 9, 500*time.Millisecond, report)
	r.Say("Requested users 1, 2 and 9; waiting for callbacks...")

	return r.Wait(ctx)
}

func (Lesson) emitter(_ context.Context, r *demokit.Runner) error {
	emitter := advanced.NewEventEmitter()
	emitter.On("message", func(p any) { r.Say("[logger] received: %v", p) })
	emitter.On("message", func(p any) { r.Say("[notifier] new message: %v", p) })

	r.Say("Handlers on 'message': %d", emitter.ListenerCount("message"))
	emitter.Emit("message", "Hello, callbacks!")

	called := emitter.Emit("unused", "nobody hears this")
	r.Say("Emitted 'unused' to %d handler(s): nothing happened", called)
	return nil
}

func (Lesson) failingHandler(_ context.Context, r *demokit.Runner) error {
	emitter := advanced.NewEventEmitter()
	emitter.OnError(func(event string, err error) {
		r.Say("Handler failed on '%s': %v", event, err)
	})

	emitter.On("order", func(p any) { r.Say("[inventory] reserving stock for %v", p) })
	emitter.On("order", func(any) { panic(fmt.Errorf("payment gateway down")) })
	emitter.On("order", func(p any) { r.Say("[email] confirmation sent for %v", p) })

	completed := emitter.Emit("order", "order #1002")
	r.Say("%d of %d handlers completed", completed, emitter.ListenerCount("order"))
	return nil
}

func (Lesson) safeCallback(_ context.Context, r *demokit.Runner) error {
	divide := Divider(100)
	onError := func(err error) { r.Say("Caught error: %v", err) }

	if v, ok := SafeCallback(divide, 4, onError); ok {
		r.Say("100 / 4 = %d", v)
	}
	if _, ok := SafeCallback(divide, 0, onError); !ok {
		r.Say("The program keeps running after the failed callback")
	}
	return nil
}

func (Lesson) httpRequest(ctx context.Context, r *demokit.Runner) error {
	client := advanced.NewHTTPClient(r.Loop())
	url := "https://api.example.com/posts/1"

	r.Say("Fetching %s ...", url)
	done := false
	client.Get(url).Then(func(resp advanced.Response, err error) {
		if err != nil {
			r.Fail(err)
			return
		}
		done = true
		r.Say("onSuccess: status %d, data %s", resp.Status, resp.Data)
	})
	r.Say("Request sent, response pending: %t", !done)

	return r.Wait(ctx)
}

func (Lesson) formValidation(_ context.Context, r *demokit.Runner) error {
	validator := advanced.NewFormValidator().
		AddRule("username", advanced.Required(), "is required").
		AddRule("email", advanced.Email(), "must be a valid email").
		AddRule("password", advanced.MinLength(8), "must be at least 8 characters")

	forms := []map[string]string{
		{"username": "ada", "email": "ada@example.com", "password": "analytical"},
		{"username": "", "email": "ada-at-example", "password": "short"},
	}

	for i, form := range forms {
		ValidateForm(validator, form,
			func() { r.Say("Form %d: valid, submitting", i+1) },
			func(errs []string) { r.Say("Form %d: rejected: %s", i+1, strings.Join(errs, "; ")) },
		)
	}
	return nil
}

func (Lesson) sequence(ctx context.Context, r *demokit.Runner) error {
	loop := r.Loop()
	start := loop.Elapsed()

	RunSequence(loop, []string{"download", "parse", "store"}, 100*time.Millisecond,
		func(name string) { r.Say("%s finished after %v", name, loop.Elapsed()-start) },
		func() { r.Say("All stages complete") },
	)
	return r.Wait(ctx)
}
