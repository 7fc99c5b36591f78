package higherorder

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFilterReduce(t *testing.T) {
	t.Parallel()
	in := []int{1, 2, 3, 4}

	assert.Equal(t, []string{"1", "2", "3", "4"}, Map(in, strconv.Itoa))
	assert.Equal(t, []int{1, 3}, Filter(in, func(n int) bool { return n%2 == 1 }))
	assert.Nil(t, Filter(in, func(int) bool { return false }))
	assert.Equal(t, 10, Reduce(in, 0, func(a, n int) int { return a + n }))
	assert.Equal(t, "x1234", Reduce(in, "x", func(a string, n int) string { return a + strconv.Itoa(n) }))
}

func TestComposeAndPipe(t *testing.T) {
	t.Parallel()
	inc := func(n int) int { return n + 1 }
	sq := func(n int) int { return n * n }

	assert.Equal(t, 16, Compose(sq, inc)(3))
	assert.Equal(t, 10, Pipe(sq, inc)(3))
	assert.Equal(t, 3, Pipe[int]()(3))
}

func TestPartial(t *testing.T) {
	t.Parallel()
	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 7, Partial(sub, 10)(3))
}

func TestGroupBy_KeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()
	groups, order := GroupBy([]string{"bb", "a", "cc", "d"}, func(s string) int { return len(s) })

	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, []string{"bb", "cc"}, groups[2])
	assert.Equal(t, []string{"a", "d"}, groups[1])
}

func TestWithLogging(t *testing.T) {
	t.Parallel()
	var lines []string
	logf := func(format string, args ...any) {
		lines = append(lines, format)
	}

	got := WithLogging("inc", logf, func(n int) int { return n + 1 })(1)
	assert.Equal(t, 2, got)
	assert.Len(t, lines, 2)
}

func TestRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		failures int
		attempts int
		retries  int
		wantErr  bool
		elapsed  time.Duration
	}{
		{"first try", 0, 3, 0, false, 500 * time.Millisecond},
		{"after two failures", 2, 3, 2, false, 1100 * time.Millisecond},
		{"gives up", 5, 2, 1, true, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loop := demokit.NewEventLoop(0)
			client := advanced.NewHTTPClient(loop)

			retries := 0
			op := FlakyGet(loop, client, "https://example.com", tt.failures, 200*time.Millisecond)
			resp, err := Retry(loop, tt.attempts, 100*time.Millisecond, op, func(int, error) { retries++ }).
				Await(context.Background())

			assert.Equal(t, tt.retries, retries)
			assert.Equal(t, tt.elapsed, loop.Elapsed())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrServiceUnavailable))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 200, resp.Status)
		})
	}
}

func TestChainStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	second := false
	check := Chain(
		func(int) error { return errors.New("first") },
		func(int) error { second = true; return nil },
	)

	assert.EqualError(t, check(0), "first")
	assert.False(t, second)
}

func TestFormCheck(t *testing.T) {
	t.Parallel()
	check := FormCheck(advanced.NewFormValidator().AddRule("n", advanced.Numeric(), "must be a number"))

	assert.NoError(t, check(map[string]string{"n": "4"}))
	err := check(map[string]string{"n": "four"})
	assert.ErrorIs(t, err, demokit.ErrValidation)
	assert.EqualError(t, err, "validation failed: n must be a number")
}
