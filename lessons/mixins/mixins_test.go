package mixins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilities(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"fly", "swim", "walk"}, Capabilities(NewDuck("d")))
	assert.Equal(t, []string{"swim", "walk"}, Capabilities(NewPenguin("p")))
	assert.Equal(t, []string{"fly"}, Capabilities(NewAirplane("a")))
	assert.Empty(t, Capabilities(42))
}

func TestDuck_DescribeUsesFlying(t *testing.T) {
	t.Parallel()
	d := NewDuck("Daisy")
	assert.Equal(t, d.Flying.Describe(), d.Describe())
	assert.Equal(t, "Daisy is a swimmer", d.Swimming.Describe())
}

func TestAirplane_LogsTransitions(t *testing.T) {
	t.Parallel()
	a := NewAirplane("A320")

	require.NoError(t, a.TakeOff())
	require.Error(t, a.TakeOff())
	require.NoError(t, a.Land())
	require.EqualError(t, a.Land(), "A320 is already on the ground")

	entries := a.Entries()
	assert.Equal(t, []string{"[A320] took off", "[A320] landed"}, entries)

	entries[0] = "tampered"
	assert.Equal(t, "[A320] took off", a.Entries()[0])
}

func TestMoney_Comparable(t *testing.T) {
	t.Parallel()
	small, big := Dollars(1.5), Dollars(1000)

	assert.True(t, big.IsGreaterThan(small))
	assert.False(t, small.IsGreaterThan(small))
	assert.True(t, IsLessThan(small, big))
	assert.Equal(t, 0, Dollars(0.1).CompareTo(Money{Cents: 10}))
	assert.Equal(t, big, MaxOf(small, big, Dollars(3)))
	assert.Equal(t, Money{}, MaxOf[Money]())
	assert.True(t, Between(Dollars(2), small, big))
	assert.False(t, Between(Dollars(2000), small, big))
}

func TestSorted_LeavesInputAlone(t *testing.T) {
	t.Parallel()
	in := []Money{Dollars(3), Dollars(1), Dollars(2)}
	out := Sorted(in)

	assert.Equal(t, []Money{Dollars(1), Dollars(2), Dollars(3)}, out)
	assert.Equal(t, Dollars(3), in[0])
}

func TestMoney_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$1,250.50", Dollars(1250.5).String())
	assert.Equal(t, "-$0.25", Dollars(-0.25).String())
	assert.Equal(t, "$5.00, $19.99", Join([]Money{Dollars(5), Dollars(19.99)}))
}
