// Package prototype shows the prototype pattern: new objects are made by
// cloning configured templates kept in a registry, and callers only ever
// receive clones.
package prototype

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Prototype is anything that can produce an independent copy of itself.
type Prototype interface {
	Clone() Prototype
	Describe() string
}

// Style is shared by shapes; it holds a slice so copies must be deep.
type Style struct {
	Color string
	Tags  []string
}

func (s Style) clone() Style {
	return Style{Color: s.Color, Tags: slices.Clone(s.Tags)}
}

// Circle is a shape prototype.
type Circle struct {
	X, Y   int
	Radius int
	Style  Style
}

func (c *Circle) Clone() Prototype {
	clone := *c
	clone.Style = c.Style.clone()
	return &clone
}

func (c *Circle) Describe() string {
	return fmt.Sprintf("%s circle r=%d at (%d,%d) tags %v", c.Style.Color, c.Radius, c.X, c.Y, c.Style.Tags)
}

// Rect is a shape prototype.
type Rect struct {
	X, Y          int
	Width, Height int
	Style         Style
}

func (r *Rect) Clone() Prototype {
	clone := *r
	clone.Style = r.Style.clone()
	return &clone
}

func (r *Rect) Describe() string {
	return fmt.Sprintf("%s rect %dx%d at (%d,%d) tags %v", r.Style.Color, r.Width, r.Height, r.X, r.Y, r.Style.Tags)
}

// Item is one inventory entry.
type Item struct {
	Name     string
	Quantity int
}

// GameCharacter is a character template with nested stats and inventory.
type GameCharacter struct {
	Name      string
	Class     string
	Level     int
	Stats     map[string]int
	Inventory []Item
}

func (g *GameCharacter) Clone() Prototype {
	return &GameCharacter{
		Name:      g.Name,
		Class:     g.Class,
		Level:     g.Level,
		Stats:     maps.Clone(g.Stats),
		Inventory: slices.Clone(g.Inventory),
	}
}

func (g *GameCharacter) Describe() string {
	stats := make([]string, 0, len(g.Stats))
	for _, k := range slices.Sorted(maps.Keys(g.Stats)) {
		stats = append(stats, fmt.Sprintf("%s %d", k, g.Stats[k]))
	}
	items := make([]string, len(g.Inventory))
	for i, it := range g.Inventory {
		items[i] = fmt.Sprintf("%dx %s", it.Quantity, it.Name)
	}
	return fmt.Sprintf("%s the %s (lvl %d) [%s] carrying %s",
		g.Name, g.Class, g.Level, strings.Join(stats, ", "), strings.Join(items, ", "))
}

// AddItem stacks quantity onto an existing item or appends a new one.
func (g *GameCharacter) AddItem(name string, quantity int) {
	for i := range g.Inventory {
		if g.Inventory[i].Name == name {
			g.Inventory[i].Quantity += quantity
			return
		}
	}
	g.Inventory = append(g.Inventory, Item{Name: name, Quantity: quantity})
}

// PrototypeRegistry maps keys to templates. It stores a clone of every
// registered prototype and hands out clones, so neither the registering
// caller nor later readers can change a stored template.
type PrototypeRegistry struct {
	mu     sync.RWMutex
	protos map[string]Prototype
}

// NewPrototypeRegistry creates an empty registry.
func NewPrototypeRegistry() *PrototypeRegistry {
	return &PrototypeRegistry{protos: make(map[string]Prototype)}
}

// Register stores a clone of p under key, replacing any previous template.
func (r *PrototypeRegistry) Register(key string, p Prototype) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.protos[key] = p.Clone()
}

// Get returns a fresh clone of the template under key. A missing key
// reports false.
func (r *PrototypeRegistry) Get(key string) (Prototype, bool) {
	r.mu.RLock()
	p, ok := r.protos[key]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Keys returns the registered keys sorted.
func (r *PrototypeRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.protos))
}

// GetAs is Get narrowed to a concrete prototype type.
func GetAs[T Prototype](r *PrototypeRegistry, key string) (T, bool) {
	p, ok := r.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := p.(T)
	return t, ok
}

var (
	registryOnce sync.Once
	registry     *PrototypeRegistry
)

// Registry is the process-wide registry, created on first access and kept
// for the life of the process.
func Registry() *PrototypeRegistry {
	registryOnce.Do(func() {
		registry = NewPrototypeRegistry()
	})
	return registry
}
