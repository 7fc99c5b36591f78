package mixins

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the capability composition demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "mixins" }
func (Lesson) Title() string { return "Mixins as Composed Capabilities" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Composing capabilities", Run: l.compose},
		{Title: "Asking what a value can do", Run: l.capabilities},
		{Title: "Resolving a method conflict", Run: l.conflict},
		{Title: "Comparable money", Run: l.comparable},
		{Title: "A stateful logging capability", Run: l.logging},
	}
}

func (Lesson) compose(_ context.Context, r *demokit.Runner) error {
	duck := NewDuck("Donald")
	r.Say("%s", duck.Fly())
	r.Say("%s", duck.Swim())
	r.Say("%s", duck.Walk())
	return nil
}

func (Lesson) capabilities(_ context.Context, r *demokit.Runner) error {
	subjects := []struct {
		name  string
		value any
	}{
		{"Donald", NewDuck("Donald")},
		{"Pingu", NewPenguin("Pingu")},
		{"Boeing 747", NewAirplane("Boeing 747")},
	}

	for _, s := range subjects {
		r.List(s.name, Capabilities(s.value))
	}
	for _, s := range subjects {
		if f, ok := s.value.(Flyer); ok {
			r.Bullet("%s", f.Fly())
		} else {
			r.Bullet("%s cannot fly", s.name)
		}
	}
	return nil
}

func (Lesson) conflict(_ context.Context, r *demokit.Runner) error {
	duck := NewDuck("Donald")
	r.Say("Duck.Describe picks Flying: %s", duck.Describe())
	r.Say("The other implementations stay reachable: %s; %s", duck.Swimming.Describe(), duck.Walking.Describe())
	r.Say("Penguin.Describe: %s", NewPenguin("Pingu").Describe())
	return nil
}

func (Lesson) comparable(_ context.Context, r *demokit.Runner) error {
	prices := []Money{Dollars(19.99), Dollars(5), Dollars(1250.5), Dollars(19.99)}

	r.Say("Sorted: %s", Join(Sorted(prices)))
	r.Say("Most expensive: %s", MaxOf(prices...))
	r.Say("%s > %s: %t", prices[0], prices[1], prices[0].IsGreaterThan(prices[1]))
	r.Say("%s == %s: %t", prices[0], prices[3], prices[0].CompareTo(prices[3]) == 0)
	r.Say("%s between %s and %s: %t", prices[0], Dollars(10), Dollars(20), Between(prices[0], Dollars(10), Dollars(20)))
	return nil
}

func (Lesson) logging(_ context.Context, r *demokit.Runner) error {
	plane := NewAirplane("Boeing 747")

	r.Try(plane.TakeOff)
	r.Say("%s", plane.Fly())
	r.Try(plane.Land)
	r.Try(plane.Land)

	r.Say("Log:")
	for _, entry := range plane.Entries() {
		r.Bullet("%s", entry)
	}
	return nil
}
