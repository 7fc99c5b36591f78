// Package cloning contrasts shallow and deep copies of values holding
// nested mutable state, and shows copy-with-overrides updates.
package cloning

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// List is a mutable list shared by reference: every holder of the same
// *List sees every Add.
type List struct {
	items []string
}

// NewList creates a list holding items.
func NewList(items ...string) *List {
	return &List{items: slices.Clone(items)}
}

func (l *List) Add(item string) { l.items = append(l.items, item) }

// Items returns a copy of the contents.
func (l *List) Items() []string { return slices.Clone(l.items) }

func (l *List) Len() int { return len(l.items) }

// Clone returns an independent list with the same contents.
func (l *List) Clone() *List { return NewList(l.items...) }

func (l *List) MarshalJSON() ([]byte, error) { return json.Marshal(l.items) }

func (l *List) UnmarshalJSON(data []byte) error { return json.Unmarshal(data, &l.items) }

// Address is nested mutable state of Person.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// Person holds a pointer to an Address and a shared List of hobbies.
type Person struct {
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Address *Address `json:"address"`
	Hobbies *List    `json:"hobbies"`
}

// ShallowClone copies the top-level fields. Address and Hobbies are shared
// with p.
func (p *Person) ShallowClone() *Person {
	c := *p
	return &c
}

// DeepClone copies everything, sharing nothing with p.
func (p *Person) DeepClone() *Person {
	c := *p
	if p.Address != nil {
		addr := *p.Address
		c.Address = &addr
	}
	if p.Hobbies != nil {
		c.Hobbies = p.Hobbies.Clone()
	}
	return &c
}

// PersonOption overrides one field in With.
type PersonOption func(*Person)

func WithName(name string) PersonOption { return func(p *Person) { p.Name = name } }
func WithAge(age int) PersonOption      { return func(p *Person) { p.Age = age } }

func WithCity(city string) PersonOption {
	return func(p *Person) {
		if p.Address == nil {
			p.Address = &Address{}
		}
		p.Address.City = city
	}
}

func WithHobbies(hobbies ...string) PersonOption {
	return func(p *Person) { p.Hobbies = NewList(hobbies...) }
}

// With returns a deep clone of p with opts applied. Fields without an
// option keep p's value.
func (p *Person) With(opts ...PersonOption) *Person {
	c := p.DeepClone()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (p *Person) String() string {
	city := "nowhere"
	if p.Address != nil {
		city = p.Address.City
	}
	var hobbies []string
	if p.Hobbies != nil {
		hobbies = p.Hobbies.Items()
	}
	return fmt.Sprintf("%s (%d) from %s, hobbies [%s]", p.Name, p.Age, city, strings.Join(hobbies, ", "))
}

// Section is one part of a Document.
type Section struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
}

// Document nests sections and metadata.
type Document struct {
	Title    string            `json:"title"`
	Sections []*Section        `json:"sections"`
	Metadata map[string]string `json:"metadata"`
}

// Clone deep-copies the document by hand.
func (d *Document) Clone() *Document {
	c := &Document{
		Title:    d.Title,
		Sections: make([]*Section, len(d.Sections)),
		Metadata: maps.Clone(d.Metadata),
	}
	for i, s := range d.Sections {
		c.Sections[i] = &Section{Heading: s.Heading, Paragraphs: slices.Clone(s.Paragraphs)}
	}
	return c
}

// Outline lists section headings with their paragraph counts.
func (d *Document) Outline() string {
	parts := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		parts[i] = fmt.Sprintf("%s(%d)", s.Heading, len(s.Paragraphs))
	}
	return d.Title + ": " + strings.Join(parts, ", ")
}

// CloneViaJSON deep-copies v by encoding and decoding it. Only what
// round-trips through JSON survives.
func CloneViaJSON[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("encoding clone: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decoding clone: %w", err)
	}
	return out, nil
}
