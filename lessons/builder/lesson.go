package builder

import (
	"context"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
)

// Lesson is the builder pattern demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "builder" }
func (Lesson) Title() string { return "Builder Pattern" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Building a house", Run: l.house},
		{Title: "Missing required fields", Run: l.incompleteHouse},
		{Title: "Pizza with accumulating toppings", Run: l.pizza},
		{Title: "Built products stay independent", Run: l.independence},
		{Title: "A builder builds once", Run: l.sealed},
		{Title: "SQL query builder", Run: l.query},
		{Title: "Rejected query configuration", Run: l.badQuery},
		{Title: "HTTP request builder", Run: l.request},
	}
}

func (Lesson) house(_ context.Context, r *demokit.Runner) error {
	house, err := NewHouseBuilder().
		Foundation("concrete").
		Walls("brick").
		Roof("tile").
		Floors(2).
		Rooms(5).
		Garage().
		Garden().
		Build()
	if err != nil {
		return err
	}
	r.Say("Built: %v", house)

	cabin, err := NewHouseBuilder().Foundation("stone").Walls("timber").Roof("shingle").Rooms(2).Build()
	if err != nil {
		return err
	}
	r.Say("Built: %v", cabin)
	return nil
}

func (Lesson) incompleteHouse(_ context.Context, r *demokit.Runner) error {
	r.Try(func() error {
		_, err := NewHouseBuilder().Walls("brick").Build()
		return err
	})

	b := NewHouseBuilder().Foundation("slab").Walls("glass")
	if _, err := b.Build(); err != nil {
		r.Fail(err)
	}
	house, err := b.Roof("flat").Build()
	if err != nil {
		return err
	}
	r.Say("After adding the roof: %v", house)

	_, err = NewHouseBuilder().Foundation("slab").Walls("brick").Roof("flat").Floors(0).Build()
	return err
}

func (Lesson) pizza(_ context.Context, r *demokit.Runner) error {
	pizza, err := NewPizzaBuilder().
		Size(Medium).
		Crust("thin").
		Topping("mushrooms").
		Topping("olives", "peppers").
		Size(Large).
		ExtraCheese().
		Build()
	if err != nil {
		return err
	}
	r.Say("%v", pizza)
	r.List("Toppings in order", pizza.Toppings())

	_, err = NewPizzaBuilder().Size("gigantic").Crust("thick").Build()
	return err
}

func (Lesson) independence(_ context.Context, r *demokit.Runner) error {
	extras := []string{"cheese"}
	base, err := NewPizzaBuilder().Size(Medium).Crust("classic").Topping(extras...).Build()
	if err != nil {
		return err
	}
	extras[0] = "anchovies"

	variant, err := base.ToBuilder().Topping("ham").Sauce("bbq").Build()
	if err != nil {
		return err
	}

	toppings := base.Toppings()
	toppings[0] = "pineapple"

	r.Say("Base:    %v", base)
	r.Say("Variant: %v", variant)
	r.Say("Changing the caller's slice and the returned copy left the base untouched")
	return nil
}

func (Lesson) sealed(_ context.Context, r *demokit.Runner) error {
	b := NewPizzaBuilder().Size(Small).Crust("thin")
	first, err := b.Build()
	if err != nil {
		return err
	}
	r.Say("First build: %v", first)

	b.Topping("pineapple")
	r.Say("Product after configuring the spent builder: %v", first)

	_, err = b.Build()
	return err
}

func (Lesson) query(_ context.Context, r *demokit.Runner) error {
	q, err := NewQueryBuilder().
		From("users").
		Select("users.id", "users.name", "orders.total").
		Join("orders", "users.id", "orders.user_id").
		Where("orders.total", ">", 100).
		Where("users.status", "=", "active").
		OrderBy("orders.total", true).
		Limit(10).
		Build()
	if err != nil {
		return err
	}

	sql, err := q.SQL()
	if err != nil {
		return err
	}
	r.Say("Tables: %s joined with %v, %d condition(s)", q.Table(), q.Joins(), q.Conditions())
	r.Say("SQL: %s", sql)

	all, err := NewQueryBuilder().From("products").Build()
	if err != nil {
		return err
	}
	sql, err = all.SQL()
	if err != nil {
		return err
	}
	r.Say("SQL: %s", sql)
	return nil
}

func (Lesson) badQuery(_ context.Context, r *demokit.Runner) error {
	r.Try(func() error {
		_, err := NewQueryBuilder().From("users").Where("age", "~", 30).Build()
		return err
	})
	_, err := NewQueryBuilder().Select("id").Build()
	return err
}

func (Lesson) request(ctx context.Context, r *demokit.Runner) error {
	req, err := NewRequestBuilder().
		Method("post").
		URL("https://api.example.com/users").
		Header("Content-Type", "application/json").
		Header("Authorization", "Bearer token").
		Query("notify", "true").
		Body(map[string]string{"name": "Ada"}).
		Timeout(5 * time.Second).
		Build()
	if err != nil {
		return err
	}
	r.Say("Request: %v", req)

	future, err := req.Send(advanced.NewHTTPClient(r.Loop()))
	if err != nil {
		return err
	}
	resp, err := future.Await(ctx)
	if err != nil {
		return err
	}
	r.Say("Response %d: %s", resp.Status, resp.Data)

	r.Try(func() error {
		_, err := NewRequestBuilder().Method("GET").URL("not a url").Build()
		return err
	})
	_, err = NewRequestBuilder().Header("Accept", "text/plain").Build()
	return err
}
