package cloning

import (
	"context"

	"github.com/GoCodeAlone/demokit"
)

// Lesson is the object cloning demonstration.
type Lesson struct{}

// New returns the lesson.
func New() demokit.Lesson { return Lesson{} }

func (Lesson) Name() string  { return "cloning" }
func (Lesson) Title() string { return "Object Cloning" }

func (l Lesson) Steps() []demokit.Step {
	return []demokit.Step{
		{Title: "Shallow clone shares nested state", Run: l.shallow},
		{Title: "Deep clone shares nothing", Run: l.deep},
		{Title: "Top-level fields are always copied", Run: l.topLevel},
		{Title: "Cloning a nested document", Run: l.document},
		{Title: "Cloning through JSON", Run: l.viaJSON},
		{Title: "Copy with overrides", Run: l.with},
	}
}

func newAda() *Person {
	return &Person{
		Name:    "Ada",
		Age:     36,
		Address: &Address{Street: "12 St James's Square", City: "London"},
		Hobbies: NewList("reading", "swimming"),
	}
}

func (Lesson) shallow(_ context.Context, r *demokit.Runner) error {
	original := newAda()
	clone := original.ShallowClone()

	clone.Hobbies.Add("cycling")
	clone.Address.City = "Paris"

	r.Say("Clone:    %v", clone)
	r.Say("Original: %v", original)
	r.Say("The original sees the new hobby and city: hobbies and address are shared")
	return nil
}

func (Lesson) deep(_ context.Context, r *demokit.Runner) error {
	original := newAda()
	clone := original.DeepClone()

	clone.Hobbies.Add("hiking")
	clone.Address.City = "Edinburgh"

	r.Say("Clone:    %v", clone)
	r.Say("Original: %v", original)

	original.Hobbies.Add("chess")
	r.Say("After changing the original, clone hobbies: %v", clone.Hobbies.Items())
	return nil
}

func (Lesson) topLevel(_ context.Context, r *demokit.Runner) error {
	original := newAda()
	clone := original.ShallowClone()
	clone.Name = "Grace"
	clone.Age = 85

	r.Say("Clone:    %s, %d", clone.Name, clone.Age)
	r.Say("Original: %s, %d", original.Name, original.Age)
	return nil
}

func (Lesson) document(_ context.Context, r *demokit.Runner) error {
	doc := &Document{
		Title: "Guide",
		Sections: []*Section{
			{Heading: "Intro", Paragraphs: []string{"Welcome."}},
			{Heading: "Usage", Paragraphs: []string{"Install.", "Run."}},
		},
		Metadata: map[string]string{"author": "Ada"},
	}
	draft := doc.Clone()
	draft.Title = "Guide (draft)"
	draft.Sections[0].Paragraphs = append(draft.Sections[0].Paragraphs, "New paragraph.")
	draft.Sections[1].Heading = "Getting started"
	draft.Metadata["author"] = "Grace"

	r.Say("Draft:    %s, author %s", draft.Outline(), draft.Metadata["author"])
	r.Say("Original: %s, author %s", doc.Outline(), doc.Metadata["author"])
	return nil
}

func (Lesson) viaJSON(_ context.Context, r *demokit.Runner) error {
	original := newAda()
	clone, err := CloneViaJSON(original)
	if err != nil {
		return err
	}
	clone.Hobbies.Add("astronomy")
	clone.Address.Street = "Marylebone"

	r.Say("JSON clone: %v, street %s", clone, clone.Address.Street)
	r.Say("Original:   %v, street %s", original, original.Address.Street)
	return nil
}

func (Lesson) with(_ context.Context, r *demokit.Runner) error {
	original := newAda()
	older := original.With(WithAge(37))
	moved := original.With(WithCity("Cambridge"), WithHobbies("mathematics"))

	r.Say("Original: %v", original)
	r.Say("Older:    %v", older)
	r.Say("Moved:    %v", moved)

	moved.Hobbies.Add("poetry")
	r.Say("Original hobbies after changing Moved: %v", original.Hobbies.Items())
	return nil
}
