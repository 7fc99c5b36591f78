package higherorder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
)

// Lesson is the higher-order functions demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "higherorder" }
func (Lesson) Title() string { return "Higher-Order Functions" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Map, Filter and Reduce", Run: l.mapFilterReduce},
		{Title: "Working with records", Run: l.records},
		{Title: "Composition and pipelines", Run: l.compose},
		{Title: "Partial application", Run: l.partial},
		{Title: "Decorating a function with logging", Run: l.decorator},
		{Title: "Retrying a flaky request", Run: l.retry},
		{Title: "Retry that gives up", Run: l.retryGivesUp},
		{Title: "Validation pipeline", Run: l.validation},
	}
}

type product struct {
	Name     string
	Category string
	Price    float64
}

var products = []product{
	{"Laptop", "electronics", 1200},
	{"Coffee", "grocery", 12.5},
	{"Headphones", "electronics", 199},
	{"Tea", "grocery", 8},
	{"Desk", "furniture", 350},
}

func (Lesson) mapFilterReduce(_ context.Context, r *demokit.Runner) error {
	numbers := []int{1, 2, 3, 4, 5, 6}
	r.Say("Numbers: %v", numbers)

	squares := Map(numbers, func(n int) int { return n * n })
	evens := Filter(numbers, func(n int) bool { return n%2 == 0 })
	sum := Reduce(numbers, 0, func(acc, n int) int { return acc + n })
	labels := Map(numbers, func(n int) string { return fmt.Sprintf("#%d", n) })

	r.Say("Squares: %v", squares)
	r.Say("Evens: %v", evens)
	r.Say("Sum: %d", sum)
	r.List("Labels", labels)
	r.Say("All positive: %t, any above 5: %t",
		Every(numbers, func(n int) bool { return n > 0 }),
		Some(numbers, func(n int) bool { return n > 5 }))
	return nil
}

func (Lesson) records(_ context.Context, r *demokit.Runner) error {
	cheap := Filter(products, func(p product) bool { return p.Price < 100 })
	r.List("Under 100", Map(cheap, func(p product) string { return p.Name }))

	total := Reduce(products, 0.0, func(acc float64, p product) float64 { return acc + p.Price })
	r.Say("Inventory value: %.2f", total)

	groups, order := GroupBy(products, func(p product) string { return p.Category })
	for _, category := range order {
		names := Map(groups[category], func(p product) string { return p.Name })
		r.Bullet("%s: %s", category, strings.Join(names, ", "))
	}
	return nil
}

func (Lesson) compose(_ context.Context, r *demokit.Runner) error {
	addOne := func(n int) int { return n + 1 }
	double := func(n int) int { return n * 2 }

	r.Say("Compose(double, addOne)(5) = %d", Compose(double, addOne)(5))
	r.Say("Pipe(double, addOne)(5) = %d", Pipe(double, addOne)(5))

	slug := Pipe(strings.TrimSpace, strings.ToLower, func(s string) string {
		return strings.ReplaceAll(s, " ", "-")
	})
	r.Say("Slug: %s", slug("  Higher Order Functions  "))
	return nil
}

func (Lesson) partial(_ context.Context, r *demokit.Runner) error {
	multiply := func(a, b int) int { return a * b }
	greet := func(greeting, name string) string { return greeting + ", " + name }

	double := Partial(multiply, 2)
	welcome := Partial(greet, "Welcome")

	r.Say("double(21) = %d", double(21))
	r.Say("%s", welcome("Ada"))
	return nil
}

func (Lesson) decorator(_ context.Context, r *demokit.Runner) error {
	square := WithLogging("square", r.Say, func(n int) int { return n * n })
	shout := WithLogging("shout", r.Say, strings.ToUpper)

	square(9)
	shout("hello")
	return nil
}

func (Lesson) retry(ctx context.Context, r *demokit.Runner) error {
	loop := r.Loop()
	client := advanced.NewHTTPClient(loop)
	start := loop.Elapsed()

	op := FlakyGet(loop, client, "https://api.example.com/status", 2, 200*time.Millisecond)
	resp, err := Retry(loop, 3, 100*time.Millisecond, op, func(attempt int, err error) {
		r.Say("Attempt %d failed at +%v: %v", attempt, loop.Elapsed()-start, err)
	}).Await(ctx)
	if err != nil {
		return err
	}

	r.Say("Succeeded at +%v with status %d", loop.Elapsed()-start, resp.Status)
	r.Say("Requests that reached the server: %d", client.Calls())
	return nil
}

func (Lesson) retryGivesUp(ctx context.Context, r *demokit.Runner) error {
	loop := r.Loop()
	client := advanced.NewHTTPClient(loop)

	op := FlakyGet(loop, client, "https://api.example.com/status", 5, 200*time.Millisecond)
	_, err := Retry(loop, 2, 100*time.Millisecond, op, func(attempt int, err error) {
		r.Say("Attempt %d failed: %v", attempt, err)
	}).Await(ctx)
	return err
}

func (Lesson) validation(_ context.Context, r *demokit.Runner) error {
	account := FormCheck(advanced.NewFormValidator().
		AddRule("username", advanced.Required(), "is required").
		AddRule("email", advanced.Email(), "must be a valid email"))
	profile := FormCheck(advanced.NewFormValidator().
		AddRule("age", advanced.InRange(13, 120), "must be between 13 and 120"))

	check := Chain(account, profile)

	forms := []map[string]string{
		{"username": "ada", "email": "ada@example.com", "age": "36"},
		{"username": "ada", "email": "ada@example.com", "age": "7"},
		{"username": "", "email": "nope", "age": "36"},
	}
	for i, form := range forms {
		if err := check(form); err != nil {
			r.Say("Form %d: %v", i+1, err)
			continue
		}
		r.Say("Form %d: accepted", i+1)
	}
	return nil
}
