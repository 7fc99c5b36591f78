package cloning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShallowClone_SharesNestedState(t *testing.T) {
	t.Parallel()
	original := &Person{Name: "P", Hobbies: NewList("reading", "swimming"), Address: &Address{City: "A"}}
	clone := original.ShallowClone()

	clone.Hobbies.Add("cycling")
	clone.Address.City = "B"
	assert.Equal(t, []string{"reading", "swimming", "cycling"}, original.Hobbies.Items())
	assert.Equal(t, "B", original.Address.City)

	original.Hobbies.Add("rowing")
	assert.Contains(t, clone.Hobbies.Items(), "rowing")
}

func TestDeepClone_SharesNothing(t *testing.T) {
	t.Parallel()
	original := &Person{Name: "P", Hobbies: NewList("reading", "swimming"), Address: &Address{City: "A"}}
	clone := original.DeepClone()

	clone.Hobbies.Add("hiking")
	clone.Address.City = "B"
	assert.Equal(t, []string{"reading", "swimming"}, original.Hobbies.Items())
	assert.Equal(t, "A", original.Address.City)

	original.Hobbies.Add("rowing")
	assert.Equal(t, []string{"reading", "swimming", "hiking"}, clone.Hobbies.Items())
}

func TestDeepClone_NilNested(t *testing.T) {
	t.Parallel()
	clone := (&Person{Name: "P"}).DeepClone()
	assert.Nil(t, clone.Address)
	assert.Nil(t, clone.Hobbies)
	assert.Equal(t, "P (0) from nowhere, hobbies []", clone.String())
}

func TestDocumentClone(t *testing.T) {
	t.Parallel()
	doc := &Document{
		Title:    "T",
		Sections: []*Section{{Heading: "H", Paragraphs: []string{"p"}}},
		Metadata: map[string]string{"k": "v"},
	}
	c := doc.Clone()
	c.Sections[0].Paragraphs[0] = "changed"
	c.Sections[0].Heading = "X"
	c.Metadata["k"] = "w"

	assert.Equal(t, "p", doc.Sections[0].Paragraphs[0])
	assert.Equal(t, "H", doc.Sections[0].Heading)
	assert.Equal(t, "v", doc.Metadata["k"])
}

func TestCloneViaJSON(t *testing.T) {
	t.Parallel()
	original := &Person{Name: "P", Age: 3, Hobbies: NewList("a"), Address: &Address{Street: "S", City: "C"}}
	clone, err := CloneViaJSON(original)
	require.NoError(t, err)

	assert.Equal(t, original.String(), clone.String())
	assert.NotSame(t, original.Hobbies, clone.Hobbies)
	assert.NotSame(t, original.Address, clone.Address)

	clone.Hobbies.Add("b")
	assert.Equal(t, 1, original.Hobbies.Len())
}

func TestWith(t *testing.T) {
	t.Parallel()
	original := &Person{Name: "P", Age: 1, Hobbies: NewList("a")}

	updated := original.With(WithName("Q"), WithCity("Z"))
	assert.Equal(t, "Q", updated.Name)
	assert.Equal(t, 1, updated.Age)
	assert.Equal(t, "Z", updated.Address.City)
	assert.Nil(t, original.Address)
	assert.Equal(t, "P", original.Name)

	same := original.With()
	assert.Equal(t, original.String(), same.String())
	assert.NotSame(t, original.Hobbies, same.Hobbies)
}
