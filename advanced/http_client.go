package advanced

import (
	"time"

	"github.com/GoCodeAlone/demokit"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultLatency is the simulated round trip of every HTTPClient call.
const DefaultLatency = 500 * time.Millisecond

// Response is the record every stubbed call resolves with.
type Response struct {
	Status    int       `json:"status"`
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// JSON renders the response as JSON.
func (r Response) JSON() string {
	out, err := json.MarshalToString(r)
	if err != nil {
		return "{}"
	}
	return out
}

// requestEcho is what the stub puts in Response.Data.
type requestEcho struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Body   any    `json:"body,omitempty"`
}

// HTTPClient is a network stub. Every call succeeds with status 200 after a
// fixed simulated delay on the event loop; nothing touches the network.
type HTTPClient struct {
	loop    *demokit.EventLoop
	latency time.Duration
	now     func() time.Time
	calls   int
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithLatency overrides DefaultLatency.
func WithLatency(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.latency = d
	}
}

// WithClock sets the clock used for response timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(c *HTTPClient) {
		c.now = now
	}
}

// NewHTTPClient creates a stub client scheduling on loop.
func NewHTTPClient(loop *demokit.EventLoop, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		loop:    loop,
		latency: DefaultLatency,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get simulates a GET request.
func (c *HTTPClient) Get(url string) *demokit.Future[Response] {
	return c.do(requestEcho{Method: "GET", URL: url})
}

// Post simulates a POST request carrying body.
func (c *HTTPClient) Post(url string, body any) *demokit.Future[Response] {
	return c.do(requestEcho{Method: "POST", URL: url, Body: body})
}

// Calls returns how many requests were issued.
func (c *HTTPClient) Calls() int {
	return c.calls
}

func (c *HTTPClient) do(req requestEcho) *demokit.Future[Response] {
	c.calls++
	return demokit.Delay(c.loop, c.latency, func() (Response, error) {
		data, err := json.MarshalToString(req)
		if err != nil {
			return Response{}, err
		}
		return Response{Status: 200, Data: data, Timestamp: c.now()}, nil
	})
}
