package advanced

import (
	"context"
	"testing"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestHTTPClient_Get(t *testing.T) {
	t.Parallel()
	loop := demokit.NewEventLoop(0)
	client := NewHTTPClient(loop, WithClock(func() time.Time { return fixedTime }))

	f := client.Get("https://api.example.com/users")
	assert.False(t, f.Done(), "response arrives only after the simulated delay")

	resp, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, `{"method":"GET","url":"https://api.example.com/users"}`, resp.Data)
	assert.Equal(t, fixedTime, resp.Timestamp)
	assert.Equal(t, DefaultLatency, loop.Elapsed())
	assert.Equal(t, 1, client.Calls())
}

func TestHTTPClient_Post(t *testing.T) {
	t.Parallel()
	loop := demokit.NewEventLoop(0)
	client := NewHTTPClient(loop, WithLatency(100*time.Millisecond), WithClock(func() time.Time { return fixedTime }))

	resp, err := client.Post("https://api.example.com/users", map[string]string{"name": "Ada"}).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"method":"POST","url":"https://api.example.com/users","body":{"name":"Ada"}}`, resp.Data)
	assert.Equal(t, 100*time.Millisecond, loop.Elapsed())
	assert.JSONEq(t, `{"status":200,"data":"{\"method\":\"POST\",\"url\":\"https://api.example.com/users\",\"body\":{\"name\":\"Ada\"}}","timestamp":"2024-01-02T03:04:05Z"}`, resp.JSON())
}

func TestHTTPClient_ConcurrentCallsResolveTogether(t *testing.T) {
	t.Parallel()
	loop := demokit.NewEventLoop(0)
	client := NewHTTPClient(loop)

	responses, err := demokit.All(context.Background(), client.Get("/a"), client.Get("/b"))
	require.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, DefaultLatency, loop.Elapsed(), "both calls were in flight at once")
}
