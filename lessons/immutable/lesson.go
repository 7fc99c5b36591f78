package immutable

import (
	"context"
	"strings"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the immutable values demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "immutable" }
func (Lesson) Title() string { return "Immutable Values" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Points that never move", Run: l.points},
		{Title: "Money arithmetic returns new values", Run: l.money},
		{Title: "Updating a person by copy", Run: l.person},
		{Title: "Read-only views of collections", Run: l.views},
		{Title: "Frozen settings as YAML and JSON", Run: l.settings},
	}
}

func (Lesson) points(_ context.Context, r *demokit.Runner) error {
	p := NewImmutablePoint(1, 2)
	q := p.Translate(3, 4)

	r.Say("p = %s, translated = %s, scaled = %s", p, q, p.Scale(10))
	r.Say("p unchanged: %t", p.Equals(NewImmutablePoint(1, 2)))
	r.Say("Distance p to translated: %g", p.DistanceTo(q))
	return nil
}

func (Lesson) money(_ context.Context, r *demokit.Runner) error {
	price, err := NewMoney(1999.99, "USD")
	if err != nil {
		return err
	}
	tax := price.Multiply(0.08)
	total, err := price.Add(tax)
	if err != nil {
		return err
	}

	r.Say("Price: %s", price)
	r.Say("Tax:   %s", tax)
	r.Say("Total: %s", total)
	r.Say("Price afterwards: %s", price)

	r.Try(func() error {
		eur, err := NewMoney(10, "EUR")
		if err != nil {
			return err
		}
		_, err = price.Add(eur)
		return err
	})
	r.Try(func() error {
		_, err := NewMoney(-5, "USD")
		return err
	})
	r.Try(func() error {
		_, err := NewMoney(5, "XYZ")
		return err
	})
	return nil
}

func (Lesson) person(_ context.Context, r *demokit.Runner) error {
	ada, err := NewImmutablePerson("Ada", 36, "math")
	if err != nil {
		return err
	}
	older, err := ada.Update(WithAge(37), WithTag("code"))
	if err != nil {
		return err
	}

	r.Say("Original: %s", ada)
	r.Say("Updated:  %s", older)
	r.Try(func() error {
		_, err := ada.Update(WithAge(-1))
		return err
	})
	r.Say("Original after failed update: %s", ada)
	return nil
}

func (Lesson) views(_ context.Context, r *demokit.Runner) error {
	ada, err := NewImmutablePerson("Ada", 36, "math", "code")
	if err != nil {
		return err
	}

	tags := ada.Tags()
	tags[0] = "hacked"
	r.Say("Changed the copy: %v", tags)
	r.Say("Person still has: %v", ada.Tags())
	return nil
}

func (Lesson) settings(_ context.Context, r *demokit.Runner) error {
	defaults := DefaultSettings()
	dark, err := defaults.Update(WithTheme("dark"), WithFontSize(16), WithLanguages("en", "fr"))
	if err != nil {
		return err
	}

	doc, err := dark.YAML()
	if err != nil {
		return err
	}
	r.Say("As YAML:")
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		r.Say("  %s", line)
	}

	js, err := dark.JSON()
	if err != nil {
		return err
	}
	r.Say("As JSON: %s", js)
	r.Say("Defaults untouched: theme %s, font size %d", defaults.Theme(), defaults.FontSize())

	parsed, err := FromYAML([]byte("theme: system\nfont_size: 12\n"))
	if err != nil {
		return err
	}
	js, err = parsed.JSON()
	if err != nil {
		return err
	}
	r.Say("Parsed over defaults: %s", js)

	_, err = FromYAML([]byte("colour: red\n"))
	r.Say("Unknown key rejected: %t", err != nil)
	r.Try(func() error {
		_, err := FromYAML([]byte("font_size: 100\n"))
		return err
	})
	r.Try(func() error {
		_, err := dark.Update(WithTheme("neon"))
		return err
	})
	return nil
}
