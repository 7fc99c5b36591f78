// Package immutable shows values that never change after construction:
// unexported fields, accessor methods, and operations that return new
// values instead of mutating the receiver.
package immutable

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/GoCodeAlone/demokit"
	"github.com/dustin/go-humanize"
)

// ImmutablePoint is a comparable 2D point.
type ImmutablePoint struct {
	x, y float64
}

func NewImmutablePoint(x, y float64) ImmutablePoint { return ImmutablePoint{x: x, y: y} }

func (p ImmutablePoint) X() float64 { return p.x }
func (p ImmutablePoint) Y() float64 { return p.y }

func (p ImmutablePoint) Translate(dx, dy float64) ImmutablePoint {
	return ImmutablePoint{x: p.x + dx, y: p.y + dy}
}

func (p ImmutablePoint) Scale(f float64) ImmutablePoint {
	return ImmutablePoint{x: p.x * f, y: p.y * f}
}

func (p ImmutablePoint) DistanceTo(o ImmutablePoint) float64 {
	return math.Hypot(o.x-p.x, o.y-p.y)
}

func (p ImmutablePoint) Equals(o ImmutablePoint) bool { return p == o }

func (p ImmutablePoint) String() string { return fmt.Sprintf("(%g, %g)", p.x, p.y) }

var symbols = map[string]string{"USD": "$", "EUR": "€", "GBP": "£"}

// Money is an amount in minor units of one currency.
type Money struct {
	cents    int64
	currency string
}

// NewMoney rejects negative amounts and currencies without a symbol.
func NewMoney(amount float64, currency string) (Money, error) {
	if _, ok := symbols[currency]; !ok {
		return Money{}, demokit.UnsupportedType("currency", currency)
	}
	if amount < 0 {
		return Money{}, demokit.NewValidationError("amount", amount, "must not be negative")
	}
	return Money{cents: int64(math.Round(amount * 100)), currency: currency}, nil
}

func (m Money) Amount() float64  { return float64(m.cents) / 100 }
func (m Money) Currency() string { return m.currency }

func (m Money) Add(o Money) (Money, error) {
	if o.currency != m.currency {
		return Money{}, demokit.NewValidationError("currency", o.currency, "cannot combine with "+m.currency)
	}
	return Money{cents: m.cents + o.cents, currency: m.currency}, nil
}

func (m Money) Subtract(o Money) (Money, error) {
	if o.currency != m.currency {
		return Money{}, demokit.NewValidationError("currency", o.currency, "cannot combine with "+m.currency)
	}
	if o.cents > m.cents {
		return Money{}, fmt.Errorf("%w: %s is more than %s", demokit.ErrInsufficientFunds, o, m)
	}
	return Money{cents: m.cents - o.cents, currency: m.currency}, nil
}

// Multiply rounds to the nearest cent.
func (m Money) Multiply(factor float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * factor)), currency: m.currency}
}

func (m Money) Equals(o Money) bool { return m == o }

func (m Money) String() string {
	return symbols[m.currency] + humanize.FormatFloat("#,###.##", m.Amount())
}

// ImmutablePerson exposes read-only accessors. Updates go through Update,
// which validates and returns a new person.
type ImmutablePerson struct {
	name string
	age  int
	tags []string
}

type PersonOption func(*ImmutablePerson)

func WithName(name string) PersonOption { return func(p *ImmutablePerson) { p.name = name } }
func WithAge(age int) PersonOption      { return func(p *ImmutablePerson) { p.age = age } }

// WithTag appends a tag unless it is already present.
func WithTag(tag string) PersonOption {
	return func(p *ImmutablePerson) {
		if !slices.Contains(p.tags, tag) {
			p.tags = append(p.tags, tag)
		}
	}
}

func WithoutTag(tag string) PersonOption {
	return func(p *ImmutablePerson) {
		p.tags = slices.DeleteFunc(p.tags, func(t string) bool { return t == tag })
	}
}

func NewImmutablePerson(name string, age int, tags ...string) (ImmutablePerson, error) {
	p := ImmutablePerson{name: name, age: age, tags: slices.Clone(tags)}
	if err := p.validate(); err != nil {
		return ImmutablePerson{}, err
	}
	return p, nil
}

// Update applies opts to a copy. On error the receiver is still the only
// valid value.
func (p ImmutablePerson) Update(opts ...PersonOption) (ImmutablePerson, error) {
	next := ImmutablePerson{name: p.name, age: p.age, tags: slices.Clone(p.tags)}
	for _, opt := range opts {
		opt(&next)
	}
	if err := next.validate(); err != nil {
		return ImmutablePerson{}, err
	}
	return next, nil
}

func (p ImmutablePerson) validate() error {
	if strings.TrimSpace(p.name) == "" {
		return demokit.NewValidationError("name", p.name, "must not be empty")
	}
	if p.age < 0 || p.age > 150 {
		return demokit.NewValidationError("age", p.age, "must be between 0 and 150")
	}
	return nil
}

func (p ImmutablePerson) Name() string { return p.name }
func (p ImmutablePerson) Age() int     { return p.age }

// Tags returns a copy; changing it does not affect the person.
func (p ImmutablePerson) Tags() []string { return slices.Clone(p.tags) }

func (p ImmutablePerson) String() string {
	return fmt.Sprintf("%s, %d [%s]", p.name, p.age, strings.Join(p.tags, ", "))
}
