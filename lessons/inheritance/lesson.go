package inheritance

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the inheritance demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "inheritance" }
func (Lesson) Title() string { return "Inheritance through Embedding" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Base type and variants", Run: l.animals},
		{Title: "Calling the embedded implementation", Run: l.super},
		{Title: "Polymorphic slice of animals", Run: l.polymorphism},
		{Title: "Shapes behind an interface", Run: l.shapes},
		{Title: "Variant-specific behaviour", Run: l.typeSwitch},
		{Title: "Vehicles with shared state", Run: l.vehicles},
	}
}

func (Lesson) animals(_ context.Context, r *demokit.Runner) error {
	dog := NewDog("Rex", 3, "Labrador")
	cat := NewCat("Whiskers", 5, true)
	fish := Fish{Animal{Name: "Nemo", Age: 1}}

	r.Say("%s", dog.Speak())
	r.Say("%s", cat.Speak())
	r.Say("%s", fish.Speak())
	r.Say("%s", dog.Fetch())
	return nil
}

func (Lesson) super(_ context.Context, r *demokit.Runner) error {
	dog := NewDog("Rex", 3, "Labrador")
	cat := NewCat("Whiskers", 5, true)

	r.Say("Dog.Describe: %s", dog.Describe())
	r.Say("Cat.Describe (promoted): %s", cat.Describe())
	r.Say("Dog's base Speak: %s", dog.Animal.Speak())
	return nil
}

func (Lesson) polymorphism(_ context.Context, r *demokit.Runner) error {
	zoo := []Speaker{
		NewDog("Buddy", 2, "Beagle"),
		NewCat("Luna", 4, false),
		Fish{Animal{Name: "Bubbles", Age: 1}},
	}
	for _, animal := range zoo {
		r.Bullet("%s", animal.Speak())
	}
	return nil
}

func (Lesson) shapes(_ context.Context, r *demokit.Runner) error {
	shapes := []Shape{
		Circle{Radius: 5},
		Rectangle{Width: 4, Height: 6},
		NewSquare(3),
		TriangleShape{Base: 6, Height: 4},
	}
	for _, s := range shapes {
		r.Bullet("%s", Describe(s))
	}
	r.Say("Total area: %.2f", TotalArea(shapes))
	return nil
}

func (Lesson) typeSwitch(_ context.Context, r *demokit.Runner) error {
	zoo := []Speaker{
		NewDog("Rex", 3, "Labrador"),
		NewCat("Tom", 2, false),
		Fish{Animal{Name: "Nemo", Age: 1}},
	}
	for _, animal := range zoo {
		switch a := animal.(type) {
		case Dog:
			r.Bullet("%s", a.Fetch())
		case Cat:
			where := "outdoors"
			if a.Indoor {
				where = "indoors"
			}
			r.Bullet("%s lives %s", a.Name, where)
		default:
			r.Bullet("no special behaviour for %s", animal.Describe())
		}
	}
	return nil
}

func (Lesson) vehicles(_ context.Context, r *demokit.Runner) error {
	fleet := []Mover{NewCar("Toyota", 4), NewBicycle("Trek")}
	for round := 1; round <= 2; round++ {
		for _, v := range fleet {
			r.Bullet("round %d: %s", round, v.Move())
		}
	}
	for _, v := range fleet {
		r.Say("%s", v.Info())
	}
	return nil
}
