package callbacks

import (
	"context"
	"testing"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessOrder(t *testing.T) {
	t.Parallel()
	var got string
	ProcessOrder(7, []string{"a", "b", "c"}, func(s string) { got = s })
	assert.Equal(t, "order #7 with 3 item(s)", got)
}

func TestTransform(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{2, 4, 6}, Transform([]int{1, 2, 3}, func(v int) int { return v * 2 }))
	assert.Empty(t, Transform(nil, func(v int) int { return v }))
}

func TestFetchUser_ShorterDelayFirst(t *testing.T) {
	t.Parallel()
	loop := demokit.NewEventLoop(0)

	var order []int
	record := func(u User, found bool) {
		if found {
			order = append(order, u.ID)
		} else {
			order = append(order, -1)
		}
	}
	FetchUser(loop, 1, 300*time.Millisecond, record)
	FetchUser(loop, 3, 100*time.Millisecond, record)
	FetchUser(loop, 42, 200*time.Millisecond, record)

	assert.Empty(t, order, "callbacks wait for the loop")
	require.NoError(t, loop.Wait(context.Background()))
	assert.Equal(t, []int{3, -1, 1}, order)
}

func TestSafeCallback(t *testing.T) {
	t.Parallel()

	var caught error
	v, ok := SafeCallback(Divider(10), 2, func(err error) { caught = err })
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.NoError(t, caught)

	v, ok = SafeCallback(Divider(10), 0, func(err error) { caught = err })
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.ErrorIs(t, caught, ErrDivideByZero)
}

func TestValidateForm(t *testing.T) {
	t.Parallel()
	validator := advanced.NewFormValidator().AddRule("name", advanced.Required(), "is required")

	var valid bool
	var errs []string
	ValidateForm(validator, map[string]string{"name": "x"}, func() { valid = true }, func(e []string) { errs = e })
	assert.True(t, valid)
	assert.Nil(t, errs)

	valid = false
	ValidateForm(validator, map[string]string{}, func() { valid = true }, func(e []string) { errs = e })
	assert.False(t, valid)
	assert.Equal(t, []string{"name is required"}, errs)
}

func TestRunSequence(t *testing.T) {
	t.Parallel()
	loop := demokit.NewEventLoop(0)

	var stages []string
	done := false
	RunSequence(loop, []string{"a", "b"}, 50*time.Millisecond, func(s string) { stages = append(stages, s) }, func() { done = true })
	require.NoError(t, loop.Wait(context.Background()))

	assert.Equal(t, []string{"a", "b"}, stages)
	assert.True(t, done)
	assert.Equal(t, 100*time.Millisecond, loop.Elapsed())

	empty := false
	RunSequence(loop, nil, time.Second, nil, func() { empty = true })
	assert.True(t, empty)
}
