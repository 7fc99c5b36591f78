package prototype

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the prototype pattern demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "prototype" }
func (Lesson) Title() string { return "Prototype Pattern" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Cloning a shape", Run: l.cloneShape},
		{Title: "Registering prototypes", Run: l.register},
		{Title: "The registry hands out clones", Run: l.clones},
		{Title: "Looking up a missing prototype", Run: l.missing},
		{Title: "Character templates", Run: l.characters},
	}
}

func (Lesson) cloneShape(_ context.Context, r *demokit.Runner) error {
	original := &Circle{X: 0, Y: 0, Radius: 10, Style: Style{Color: "red", Tags: []string{"base"}}}
	clone := original.Clone().(*Circle)
	clone.X, clone.Y = 5, 5
	clone.Style.Color = "blue"
	clone.Style.Tags[0] = "copy"

	r.Say("Original: %s", original.Describe())
	r.Say("Clone:    %s", clone.Describe())
	return nil
}

func (Lesson) register(_ context.Context, r *demokit.Runner) error {
	reg := Registry()
	reg.Register("small-circle", &Circle{Radius: 5, Style: Style{Color: "green"}})
	reg.Register("button", &Rect{Width: 120, Height: 40, Style: Style{Color: "grey", Tags: []string{"ui"}}})
	reg.Register("warrior", &GameCharacter{
		Class: "Warrior", Level: 1,
		Stats:     map[string]int{"str": 15, "dex": 10},
		Inventory: []Item{{"sword", 1}, {"potion", 2}},
	})
	reg.Register("mage", &GameCharacter{
		Class: "Mage", Level: 1,
		Stats:     map[string]int{"int": 16, "wis": 12},
		Inventory: []Item{{"staff", 1}, {"scroll", 3}},
	})

	r.List("Registered", reg.Keys())
	r.Say("Registry() always returns the same registry: %t", Registry() == reg)
	return nil
}

func (Lesson) clones(_ context.Context, r *demokit.Runner) error {
	reg := Registry()

	ok, found := GetAs[*Rect](reg, "button")
	if !found {
		return demokit.UnsupportedType("prototype", "button")
	}
	cancel, _ := GetAs[*Rect](reg, "button")
	ok.X, ok.Style.Tags = 10, append(ok.Style.Tags, "primary")
	cancel.X, cancel.Style.Color = 140, "white"

	fresh, _ := reg.Get("button")
	r.Say("OK:     %s", ok.Describe())
	r.Say("Cancel: %s", cancel.Describe())
	r.Say("Template still: %s", fresh.Describe())
	return nil
}

func (Lesson) missing(_ context.Context, r *demokit.Runner) error {
	if _, found := Registry().Get("hexagon"); !found {
		r.Say("No prototype registered under %q", "hexagon")
	}
	return nil
}

func (Lesson) characters(_ context.Context, r *demokit.Runner) error {
	reg := Registry()

	hero, _ := GetAs[*GameCharacter](reg, "warrior")
	hero.Name = "Aragorn"
	hero.Level = 5
	hero.Stats["str"] += 3
	hero.AddItem("potion", 3)
	hero.AddItem("shield", 1)

	sidekick, _ := GetAs[*GameCharacter](reg, "warrior")
	sidekick.Name = "Boromir"

	wizard, _ := GetAs[*GameCharacter](reg, "mage")
	wizard.Name = "Gandalf"

	for _, c := range []*GameCharacter{hero, sidekick, wizard} {
		r.Bullet("%s", c.Describe())
	}
	return nil
}
