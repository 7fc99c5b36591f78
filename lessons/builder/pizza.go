package builder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/GoCodeAlone/demokit"
)

// Pizza sizes.
const (
	Small  = "small"
	Medium = "medium"
	Large  = "large"
)

var sizePrices = map[string]float64{Small: 8, Medium: 10, Large: 12}

const toppingPrice = 1.5

// Pizza is an immutable product of PizzaBuilder.
type Pizza struct {
	size        string
	crust       string
	sauce       string
	toppings    []string
	extraCheese bool
}

func (p Pizza) Size() string  { return p.size }
func (p Pizza) Crust() string { return p.crust }
func (p Pizza) Sauce() string { return p.sauce }

// Toppings returns a copy of the toppings in the order they were added.
func (p Pizza) Toppings() []string { return slices.Clone(p.toppings) }

func (p Pizza) ExtraCheese() bool { return p.extraCheese }

// Price is the size price plus every topping and extra cheese.
func (p Pizza) Price() float64 {
	price := sizePrices[p.size] + float64(len(p.toppings))*toppingPrice
	if p.extraCheese {
		price += 2
	}
	return price
}

func (p Pizza) String() string {
	toppings := "no toppings"
	if len(p.toppings) > 0 {
		toppings = strings.Join(p.toppings, ", ")
	}
	cheese := ""
	if p.extraCheese {
		cheese = ", extra cheese"
	}
	return fmt.Sprintf("%s %s crust pizza with %s sauce: %s%s ($%.2f)", p.size, p.crust, p.sauce, toppings, cheese, p.Price())
}

// ToBuilder starts a new builder from p. Changes to it never reach p.
func (p Pizza) ToBuilder() *PizzaBuilder {
	b := NewPizzaBuilder()
	b.pizza = p
	b.pizza.toppings = slices.Clone(p.toppings)
	b.sizeSet, b.crustSet = true, true
	return b
}

// PizzaBuilder requires size and crust. Toppings accumulate in order.
type PizzaBuilder struct {
	seal
	pizza    Pizza
	sizeSet  bool
	crustSet bool
}

// NewPizzaBuilder starts a pizza with tomato sauce and nothing else.
func NewPizzaBuilder() *PizzaBuilder {
	return &PizzaBuilder{pizza: Pizza{sauce: "tomato"}}
}

// Size accepts small, medium or large; the last call wins.
func (b *PizzaBuilder) Size(size string) *PizzaBuilder {
	if !b.configurable() {
		return b
	}
	if _, ok := sizePrices[size]; !ok {
		b.fail(demokit.UnsupportedType("size", size))
		return b
	}
	b.pizza.size = size
	b.sizeSet = true
	return b
}

func (b *PizzaBuilder) Crust(crust string) *PizzaBuilder {
	if b.configurable() {
		b.pizza.crust = crust
		b.crustSet = crust != ""
	}
	return b
}

func (b *PizzaBuilder) Sauce(sauce string) *PizzaBuilder {
	if b.configurable() {
		b.pizza.sauce = sauce
	}
	return b
}

// Topping adds toppings after the ones already added.
func (b *PizzaBuilder) Topping(toppings ...string) *PizzaBuilder {
	if b.configurable() {
		b.pizza.toppings = append(b.pizza.toppings, toppings...)
	}
	return b
}

func (b *PizzaBuilder) ExtraCheese() *PizzaBuilder {
	if b.configurable() {
		b.pizza.extraCheese = true
	}
	return b
}

// Build returns the pizza with its own copy of the toppings.
func (b *PizzaBuilder) Build() (Pizza, error) {
	if err := b.check(); err != nil {
		return Pizza{}, err
	}
	if m := missing(field{"size", b.sizeSet}, field{"crust", b.crustSet}); len(m) > 0 {
		return Pizza{}, demokit.NewConstructionError("pizza", m...)
	}
	b.done()

	p := b.pizza
	p.toppings = slices.Clone(b.pizza.toppings)
	return p, nil
}
