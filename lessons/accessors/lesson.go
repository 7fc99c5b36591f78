package accessors

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the getters and setters demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "accessors" }
func (Lesson) Title() string { return "Getters and Setters" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Computed temperature accessors", Run: l.temperature},
		{Title: "Rejecting invalid temperatures", Run: l.invalidTemperature},
		{Title: "Read-only bank balance", Run: l.bankAccount},
		{Title: "Insufficient funds", Run: l.insufficientFunds},
		{Title: "Validated person fields", Run: l.person},
		{Title: "Rectangle computed properties", Run: l.rectangle},
		{Title: "Human-readable sizes", Run: l.sizes},
	}
}

func (Lesson) temperature(_ context.Context, r *demokit.Runner) error {
	t, err := NewTemperature(25)
	if err != nil {
		return err
	}
	r.Say("%.1f°C = %.1f°F = %.2fK", t.Celsius(), t.Fahrenheit(), t.Kelvin())

	if err := t.SetFahrenheit(212); err != nil {
		return err
	}
	r.Say("After setting 212°F: %.1f°C", t.Celsius())
	return nil
}

func (Lesson) invalidTemperature(_ context.Context, r *demokit.Runner) error {
	t, err := NewTemperature(20)
	if err != nil {
		return err
	}
	r.Try(func() error { return t.SetCelsius(-300) })
	r.Say("Temperature is still %.1f°C", t.Celsius())

	_, err = NewTemperature(-500)
	return err
}

func (Lesson) bankAccount(_ context.Context, r *demokit.Runner) error {
	account, err := NewBankAccount("Ada", 1000)
	if err != nil {
		return err
	}
	r.Say("%s opened an account with %s", account.Owner(), account.FormattedBalance())

	if err := account.Deposit(1500.5); err != nil {
		return err
	}
	if err := account.Withdraw(250); err != nil {
		return err
	}
	r.Say("Balance: %s", account.FormattedBalance())

	r.Try(func() error { return account.Deposit(-20) })
	r.List("History", account.History())
	return nil
}

func (Lesson) insufficientFunds(_ context.Context, r *demokit.Runner) error {
	account, err := NewBankAccount("Grace", 100)
	if err != nil {
		return err
	}
	err = account.Withdraw(500)
	r.Say("Balance unchanged: %s", account.FormattedBalance())
	return err
}

func (Lesson) person(_ context.Context, r *demokit.Runner) error {
	p, err := NewPerson("  Ada King Lovelace ", 36, "Ada@Example.com")
	if err != nil {
		return err
	}
	r.Say("Name: %q, initials %s, email %s, adult: %t", p.Name(), p.Initials(), p.Email(), p.IsAdult())

	r.Try(func() error { return p.SetAge(-5) })
	r.Try(func() error { return p.SetName("   ") })
	r.Try(func() error { return p.SetEmail("not-an-email") })
	r.Say("Person is unchanged: %s, %d", p.Name(), p.Age())
	return nil
}

func (Lesson) rectangle(_ context.Context, r *demokit.Runner) error {
	rect, err := NewRectangle(3, 4)
	if err != nil {
		return err
	}
	r.Say("3x4: area %.0f, perimeter %.0f, diagonal %.0f, square: %t",
		rect.Area(), rect.Perimeter(), rect.Diagonal(), rect.IsSquare())

	if err := rect.SetWidth(4); err != nil {
		return err
	}
	r.Say("4x4: area %.0f, square: %t", rect.Area(), rect.IsSquare())

	return rect.SetHeight(0)
}

func (Lesson) sizes(_ context.Context, r *demokit.Runner) error {
	for _, size := range []FileSize{512, 1_500_000, 2_000_000_000} {
		r.Bullet("%d bytes = %s", uint64(size), size.Human())
	}
	return nil
}
