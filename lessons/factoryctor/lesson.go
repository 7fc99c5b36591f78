package factoryctor

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the factory constructor demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "factoryctor" }
func (Lesson) Title() string { return "Factory Constructors" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Singleton connection", Run: l.singleton},
		{Title: "Cached instance per name", Run: l.loggers},
		{Title: "Choosing the concrete type", Run: l.shapes},
		{Title: "Unsupported discriminator", Run: l.unsupported},
		{Title: "Constructing from JSON", Run: l.fromJSON},
		{Title: "Rejected JSON", Run: l.badJSON},
		{Title: "Object pool", Run: l.pool},
	}
}

func (Lesson) singleton(_ context.Context, r *demokit.Runner) error {
	first := Database("localhost", 5432)
	second := Database("db.example.com", 3306)

	r.Say("Same instance: %t", first == second)
	r.Say("Same ID: %t", first.ID == second.ID)
	r.Say("Second call still points at %s:%d", second.Host, second.Port)
	r.Say("%s", first.Query("SELECT 1"))
	return nil
}

func (Lesson) loggers(_ context.Context, r *demokit.Runner) error {
	cache := NewLoggerCache()
	api := cache.Get("api")
	db := cache.Get("db")
	again := cache.Get("api")

	r.Say("%s", api.Log("request received"))
	r.Say("%s", db.Log("query executed"))
	r.Say("%s", again.Log("response sent"))
	r.Say("Same api logger: %t, distinct loggers: %d", api == again, cache.Len())
	r.List("api lines", api.Lines())
	return nil
}

func (Lesson) shapes(_ context.Context, r *demokit.Runner) error {
	requests := []struct {
		kind string
		dims []float64
	}{
		{"circle", []float64{1}},
		{"square", []float64{3}},
		{"Rectangle", []float64{2, 5}},
	}
	for _, req := range requests {
		shape, err := NewShape(req.kind, req.dims...)
		if err != nil {
			r.Fail(err)
			continue
		}
		r.Bullet("%s %v -> %s with area %.2f", req.kind, req.dims, shape.Kind(), shape.Area())
	}
	return nil
}

func (Lesson) unsupported(_ context.Context, r *demokit.Runner) error {
	r.Try(func() error { _, err := NewShape("rectangle", 2); return err })
	_, err := NewShape("hexagon", 1)
	return err
}

func (Lesson) fromJSON(_ context.Context, r *demokit.Runner) error {
	u, err := UserFromJSON([]byte(`{"id": 7, "name": "Ada", "email": "ada@example.com", "roles": ["admin"]}`))
	if err != nil {
		return err
	}
	r.Say("Decoded: %s <%s> roles %v", u.Name, u.Email, u.Roles)

	m, err := UserFromMap(map[string]any{"id": 8, "name": "Grace"})
	if err != nil {
		return err
	}
	r.Say("From map: %s", m.JSON())
	return nil
}

func (Lesson) badJSON(_ context.Context, r *demokit.Runner) error {
	r.Try(func() error { _, err := UserFromJSON([]byte(`{"id": 0, "name": "Nobody"}`)); return err })
	_, err := UserFromJSON([]byte(`{"id": 3}`))
	return err
}

func (Lesson) pool(_ context.Context, r *demokit.Runner) error {
	pool, err := NewConnectionPool(2)
	if err != nil {
		return err
	}

	a, err := pool.Acquire()
	if err != nil {
		return err
	}
	b, err := pool.Acquire()
	if err != nil {
		return err
	}
	r.Say("Acquired connections %d and %d", a.ID, b.ID)

	r.Try(func() error { _, err := pool.Acquire(); return err })

	if err := pool.Release(a); err != nil {
		return err
	}
	c, err := pool.Acquire()
	if err != nil {
		return err
	}
	created, inUse := pool.Stats()
	r.Say("After release, acquired connection %d again (used %d times)", c.ID, c.Uses)
	r.Say("Created %d, in use %d", created, inUse)

	if err := pool.Release(b); err != nil {
		return err
	}
	r.Try(func() error { return pool.Release(b) })
	return nil
}
