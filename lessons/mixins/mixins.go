// Package mixins composes behaviour from small capability values instead of
// a class hierarchy. Each capability is a struct with its own methods;
// concrete types embed the ones they need and the interfaces below describe
// what a value can do.
package mixins

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

type Flyer interface {
	Fly() string
}

type Swimmer interface {
	Swim() string
}

type Walker interface {
	Walk() string
}

// Flying is the reusable flight capability.
type Flying struct {
	Subject     string
	MaxAltitude int
}

func (f Flying) Fly() string {
	return fmt.Sprintf("%s flies up to %s m", f.Subject, humanize.Comma(int64(f.MaxAltitude)))
}

func (f Flying) Describe() string { return f.Subject + " is a flyer" }

// Swimming is the reusable swimming capability.
type Swimming struct {
	Subject  string
	MaxDepth int
}

func (s Swimming) Swim() string {
	return fmt.Sprintf("%s dives down to %d m", s.Subject, s.MaxDepth)
}

func (s Swimming) Describe() string { return s.Subject + " is a swimmer" }

// Walking is the reusable walking capability.
type Walking struct {
	Subject string
	Legs    int
}

func (w Walking) Walk() string {
	return fmt.Sprintf("%s waddles on %d legs", w.Subject, w.Legs)
}

func (w Walking) Describe() string { return w.Subject + " is a walker" }

// Duck can do everything. All three capabilities define Describe, so the
// promoted selector is ambiguous and Duck resolves it itself: it uses the
// Flying implementation.
type Duck struct {
	Flying
	Swimming
	Walking
}

func NewDuck(name string) Duck {
	return Duck{
		Flying:   Flying{Subject: name, MaxAltitude: 1200},
		Swimming: Swimming{Subject: name, MaxDepth: 2},
		Walking:  Walking{Subject: name, Legs: 2},
	}
}

func (d Duck) Describe() string { return d.Flying.Describe() }

// Penguin swims and walks but cannot fly.
type Penguin struct {
	Swimming
	Walking
}

func NewPenguin(name string) Penguin {
	return Penguin{
		Swimming: Swimming{Subject: name, MaxDepth: 500},
		Walking:  Walking{Subject: name, Legs: 2},
	}
}

// Describe names both capabilities, the Swimming one first.
func (p Penguin) Describe() string {
	return p.Swimming.Describe() + " and a walker"
}

// Logging is a stateful capability, so it is embedded by pointer.
type Logging struct {
	Prefix  string
	entries []string
}

func NewLogging(prefix string) *Logging { return &Logging{Prefix: prefix} }

func (l *Logging) Log(format string, args ...any) {
	l.entries = append(l.entries, "["+l.Prefix+"] "+fmt.Sprintf(format, args...))
}

// Entries returns a copy of everything logged so far.
func (l *Logging) Entries() []string { return slices.Clone(l.entries) }

// Airplane flies and records what it does.
type Airplane struct {
	Flying
	*Logging
	Model    string
	airborne bool
}

func NewAirplane(model string) *Airplane {
	return &Airplane{
		Flying:  Flying{Subject: model, MaxAltitude: 12500},
		Logging: NewLogging(model),
		Model:   model,
	}
}

func (a *Airplane) TakeOff() error {
	if a.airborne {
		return fmt.Errorf("%s is already airborne", a.Model)
	}
	a.airborne = true
	a.Log("took off")
	return nil
}

func (a *Airplane) Land() error {
	if !a.airborne {
		return fmt.Errorf("%s is already on the ground", a.Model)
	}
	a.airborne = false
	a.Log("landed")
	return nil
}

// Capabilities reports which of Flyer, Swimmer and Walker v satisfies.
func Capabilities(v any) []string {
	var caps []string
	if _, ok := v.(Flyer); ok {
		caps = append(caps, "fly")
	}
	if _, ok := v.(Swimmer); ok {
		caps = append(caps, "swim")
	}
	if _, ok := v.(Walker); ok {
		caps = append(caps, "walk")
	}
	return caps
}

// Comparable is implemented by values with a total order among themselves.
type Comparable[T any] interface {
	CompareTo(other T) int
}

func IsGreaterThan[T Comparable[T]](a, b T) bool { return a.CompareTo(b) > 0 }

func IsLessThan[T Comparable[T]](a, b T) bool { return a.CompareTo(b) < 0 }

// Between reports whether lo <= v <= hi.
func Between[T Comparable[T]](v, lo, hi T) bool {
	return v.CompareTo(lo) >= 0 && v.CompareTo(hi) <= 0
}

// MaxOf returns the greatest item, or the zero value for no items.
func MaxOf[T Comparable[T]](items ...T) T {
	var best T
	for i, item := range items {
		if i == 0 || item.CompareTo(best) > 0 {
			best = item
		}
	}
	return best
}

// Sorted returns items in ascending order without touching the input.
func Sorted[T Comparable[T]](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int { return a.CompareTo(b) })
	return out
}

// Money is a dollar amount held in cents.
type Money struct {
	Cents int64
}

func Dollars(d float64) Money {
	if d < 0 {
		return Money{Cents: int64(d*100 - 0.5)}
	}
	return Money{Cents: int64(d*100 + 0.5)}
}

func (m Money) CompareTo(other Money) int {
	switch {
	case m.Cents < other.Cents:
		return -1
	case m.Cents > other.Cents:
		return 1
	default:
		return 0
	}
}

func (m Money) IsGreaterThan(other Money) bool { return IsGreaterThan(m, other) }

func (m Money) String() string {
	sign := ""
	cents := m.Cents
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", float64(cents)/100)
}

// Join renders any Stringer slice as "a, b, c".
func Join[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}
