package generics

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoCodeAlone/demokit"
	"github.com/google/uuid"
)

// Lesson is the generics demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "generics" }
func (Lesson) Title() string { return "Generics" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Boxes and pairs", Run: l.boxes},
		{Title: "A generic stack", Run: l.stack},
		{Title: "Cache with insertion-ordered keys", Run: l.cache},
		{Title: "Bounded LRU cache", Run: l.bounded},
		{Title: "Generic binary search tree", Run: l.tree},
		{Title: "Repository keyed by ID", Run: l.repository},
		{Title: "Constrained functions", Run: l.constrained},
		{Title: "Typed event bus", Run: l.eventBus},
		{Title: "Dispatch on explicit tags", Run: l.tags},
	}
}

func (Lesson) boxes(_ context.Context, r *demokit.Runner) error {
	box := NewBox(42)
	label := MapBox(box, func(n int) string { return fmt.Sprintf("#%d", n) })
	pair := NewPair("age", 36)

	r.Say("%s holds an int, %s holds a string", box, label)
	r.Say("Pair %s swapped is %s", pair, pair.Swap())
	return nil
}

func (Lesson) stack(_ context.Context, r *demokit.Runner) error {
	var s Stack[string]
	s.Push("a", "b", "c")

	top, _ := s.Peek()
	r.Say("Peek: %s, size %d", top, s.Len())

	var popped []string
	for !s.IsEmpty() {
		v, _ := s.Pop()
		popped = append(popped, v)
	}
	r.List("Popped", popped)

	_, ok := s.Pop()
	r.Say("Pop on empty stack: ok=%t", ok)
	return nil
}

func (Lesson) cache(_ context.Context, r *demokit.Runner) error {
	c := NewCache[string, int]()
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 3)

	v, _ := c.Get("a")
	r.Say("Get(%q) = %d", "a", v)
	missing, found := c.Get("missing")
	r.Say("Get(%q) = %d, found=%t", "missing", missing, found)
	r.List("Keys", c.Keys())
	return nil
}

func (Lesson) bounded(_ context.Context, r *demokit.Runner) error {
	c := NewBoundedCache[string, int](2, 0, func(k string, v int) {
		r.Bullet("evicted %s=%d", k, v)
	})
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3)

	r.List("Keys (least recent first)", c.Keys())
	_, found := c.Peek("b")
	r.Say("b still cached: %t", found)
	return nil
}

func (Lesson) tree(_ context.Context, r *demokit.Runner) error {
	var ints *TreeNode[int]
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80, 30} {
		ints = ints.Insert(v)
	}
	var words *TreeNode[string]
	for _, w := range []string{"pear", "apple", "fig"} {
		words = words.Insert(w)
	}

	r.Say("Ints in order: %v", ints.InOrder())
	r.Say("Contains 60: %t, contains 65: %t", ints.Contains(60), ints.Contains(65))
	r.Say("Words in order: %v", words.InOrder())
	return nil
}

func (Lesson) repository(_ context.Context, r *demokit.Runner) error {
	users := NewRepository[User]()
	alice, bob := NewUser("Alice", "alice@example.com"), NewUser("Bob", "bob@example.com")
	users.Save(alice)
	users.Save(bob)

	products := NewRepository[Product]()
	laptop, mouse := NewProduct("Laptop", 999.99), NewProduct("Mouse", 25.5)
	products.Save(laptop)
	products.Save(mouse)
	products.Save(NewProduct("Monitor", 199))

	r.Say("Users: %d, products: %d", users.Count(), products.Count())

	if u, ok := users.FindByID(bob.ID); ok {
		r.Say("Found %s <%s>", u.Name, u.Email)
	}

	var pricey []string
	for _, p := range products.FindWhere(func(p Product) bool { return p.Price > 100 }) {
		pricey = append(pricey, p.Name)
	}
	r.List("Products over $100", pricey)

	r.Say("Deleted Mouse: %t, products left: %d", products.Delete(mouse.ID), products.Count())
	_, found := users.FindByID(uuid.Nil)
	r.Say("Lookup of an unknown ID: found=%t", found)
	return nil
}

func (Lesson) constrained(_ context.Context, r *demokit.Runner) error {
	words := []string{"c", "a", "b"}

	r.Say("Max(3, 9, 4) = %d", Max(3, 9, 4))
	r.Say("Min(2.5, -1, 7) = %g", Min(2.5, -1, 7))
	r.Say("Max(%q, %q, %q) = %s", "pear", "apple", "zebra", Max("pear", "apple", "zebra"))
	r.Say("SortedCopy: %v, input still %v", SortedCopy(words), words)
	return nil
}

func (Lesson) eventBus(ctx context.Context, r *demokit.Runner) error {
	bus := NewTypedEventBus("demokit/generics")

	Subscribe(bus, "user.registered", func(_ context.Context, e UserRegistered) {
		r.Bullet("welcome email to %s", e.Email)
	})
	Subscribe(bus, "user.registered", func(_ context.Context, e UserRegistered) {
		r.Bullet("audit: user %s registered", e.Name)
	})
	Subscribe(bus, "order.placed", func(_ context.Context, e OrderPlaced) {
		r.Bullet("order %s total $%.2f", e.OrderID, e.Total)
	})

	n, err := bus.Publish(ctx, "user.registered", UserRegistered{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		return err
	}
	r.Say("Delivered to %d subscriber(s)", n)

	if _, err := bus.Publish(ctx, "order.placed", OrderPlaced{OrderID: "A-1", Total: 42.5}); err != nil {
		return err
	}

	n, err = bus.Publish(ctx, "order.placed", "not an order")
	r.Say("Malformed payload rejected: delivered=%d, error=%t", n, err != nil)

	n, err = bus.Publish(ctx, "user.deleted", UserRegistered{Name: "Ada"})
	if err != nil {
		return err
	}
	r.Say("No subscribers for user.deleted: delivered=%d", n)
	return nil
}

func (Lesson) tags(_ context.Context, r *demokit.Runner) error {
	p := NewDataProcessor()
	RegisterKind(p, "api", func(resp APIResponse) error {
		if resp.Status < 100 || resp.Status > 599 {
			return demokit.NewValidationError("status", resp.Status, "not an HTTP status")
		}
		return nil
	})
	RegisterKind[User](p, "user", nil)
	r.List("Kinds", p.Kinds())

	var resp APIResponse
	r.Try(func() error {
		var err error
		resp, err = Process[APIResponse](p, "api", []byte(`{"status":200,"message":"ok"}`))
		if err == nil {
			r.Say("api: %d %s", resp.Status, resp.Message)
		}
		return err
	})
	r.Try(func() error {
		_, err := Process[APIResponse](p, "api", []byte(`{"status":42}`))
		return err
	})
	r.Try(func() error {
		_, err := Process[User](p, "api", []byte(`{"status":200}`))
		return err
	})
	r.Try(func() error {
		_, err := Process[APIResponse](p, "xml", []byte(`<ok/>`))
		return err
	})

	loaded := NewStatusManager[APIResponse]()
	r.Say("Status: %s", loaded.Describe())
	if err := loaded.Start(); err != nil {
		return err
	}
	r.Say("Status: %s", loaded.Describe())
	if err := loaded.Succeed(resp); err != nil {
		return err
	}
	r.Say("Status: %s", loaded.Describe())

	failed := NewStatusManager[APIResponse]()
	if err := failed.Start(); err != nil {
		return err
	}
	if err := failed.Fail(errors.New("timeout")); err != nil {
		return err
	}
	r.Say("Status: %s", failed.Describe())
	r.Try(func() error { return failed.Succeed(resp) })

	history := make([]string, 0, len(failed.History()))
	for _, s := range failed.History() {
		history = append(history, string(s))
	}
	r.List("History", history)
	return nil
}
