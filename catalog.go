package demokit

import (
	"fmt"
	"sync"
)

// LessonFactory constructs a fresh Lesson.
type LessonFactory func() Lesson

// Catalog maps lesson names to factories. Names keep registration order.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]LessonFactory
	order     []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]LessonFactory)}
}

// Register adds a factory under name.
func (c *Catalog) Register(name string, factory LessonFactory) error {
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrLessonFactoryNil, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrLessonAlreadyRegistered, name)
	}
	c.factories[name] = factory
	c.order = append(c.order, name)
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (c *Catalog) MustRegister(name string, factory LessonFactory) {
	if err := c.Register(name, factory); err != nil {
		panic(err)
	}
}

// New builds the lesson registered under name. Unknown names fail with
// ErrUnsupportedType.
func (c *Catalog) New(name string) (Lesson, error) {
	c.mu.RLock()
	factory, ok := c.factories[name]
	c.mu.RUnlock()

	if !ok {
		return nil, UnsupportedType("lesson", name)
	}
	return factory(), nil
}

// Resolve builds every named lesson, failing on the first unknown name
// before anything runs.
func (c *Catalog) Resolve(names ...string) ([]Lesson, error) {
	lessons := make([]Lesson, 0, len(names))
	for _, name := range names {
		lesson, err := c.New(name)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}
