package constructors

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the constructors demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "constructors" }
func (Lesson) Title() string { return "Constructors" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Default constructor", Run: l.defaults},
		{Title: "Named constructors", Run: l.named},
		{Title: "Redirecting constructor", Run: l.redirecting},
		{Title: "Validating constructor", Run: l.validating},
		{Title: "Rejected construction", Run: l.rejected},
		{Title: "Defaults with options", Run: l.options},
		{Title: "Canonical immutable instances", Run: l.canonical},
	}
}

func (Lesson) defaults(_ context.Context, r *demokit.Runner) error {
	p := NewPoint(3, 4)
	var zero Point
	r.Say("NewPoint(3, 4) = %v", p)
	r.Say("Zero value = %v", zero)
	r.Say("Distance between them: %g", p.DistanceTo(zero))
	return nil
}

func (Lesson) named(_ context.Context, r *demokit.Runner) error {
	r.Say("Origin() = %v", Origin())
	r.Say("FromPolar(2, 90) = %v", FromPolar(2, 90))
	r.Say("FromPolar(1, 180) = %v", FromPolar(1, 180))
	return nil
}

func (Lesson) redirecting(_ context.Context, r *demokit.Runner) error {
	p := OnXAxis(7)
	r.Say("OnXAxis(7) = %v", p)
	r.Say("Same as NewPoint(7, 0): %t", p == NewPoint(7, 0))
	return nil
}

func (Lesson) validating(_ context.Context, r *demokit.Runner) error {
	price, err := Dollars(1234.5)
	if err != nil {
		return err
	}
	fee, err := FromCents(1999)
	if err != nil {
		return err
	}
	euro, err := NewMoney(50, "eur")
	if err != nil {
		return err
	}

	r.Say("Price: %v", price)
	r.Say("Fee: %v", fee)
	r.Say("Euro amount: %v (%s)", euro, euro.Currency())
	return nil
}

func (Lesson) rejected(_ context.Context, r *demokit.Runner) error {
	r.Try(func() error { _, err := NewMoney(-5, "USD"); return err })
	r.Try(func() error { _, err := NewMoney(10, "xyz"); return err })
	_, err := FromCents(0)
	return err
}

func (Lesson) options(_ context.Context, r *demokit.Runner) error {
	basic, err := NewStudent("Ada")
	if err != nil {
		return err
	}
	custom, err := NewStudent("Grace", WithGrade(11), WithCourses("Math", "Physics"), WithAdvisor("Dr. Turing"))
	if err != nil {
		return err
	}
	away, err := NewStudent("Alan", WithGrade(9), Inactive())
	if err != nil {
		return err
	}

	r.Bullet("%v", basic)
	r.Bullet("%v", custom)
	r.Bullet("%v", away)

	_, err = NewStudent("Linus", WithGrade(13))
	return err
}

func (Lesson) canonical(_ context.Context, r *demokit.Runner) error {
	a := Const(1, 2)
	b := Const(1, 2)
	c := Const(2, 1)

	r.Say("a = %v, b = %v, c = %v", a, b, c)
	r.Say("a and b are the same instance: %t", a == b)
	r.Say("a and c are the same instance: %t", a == c)
	return nil
}
