package builder

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
)

// DefaultTimeout applies when a request sets none.
const DefaultTimeout = 30 * time.Second

// Request is an immutable product of RequestBuilder.
type Request struct {
	method  string
	url     string
	headers map[string]string
	query   url.Values
	body    any
	timeout time.Duration
}

func (r Request) Method() string         { return r.method }
func (r Request) Timeout() time.Duration { return r.timeout }
func (r Request) Body() any              { return r.body }

// URL returns the target with query parameters encoded.
func (r Request) URL() string {
	if len(r.query) == 0 {
		return r.url
	}
	return r.url + "?" + r.query.Encode()
}

// Headers returns a copy of the headers.
func (r Request) Headers() map[string]string { return maps.Clone(r.headers) }

// HeaderNames returns the header names sorted.
func (r Request) HeaderNames() []string {
	return slices.Sorted(maps.Keys(r.headers))
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s (headers: %s, timeout %v)", r.method, r.URL(), strings.Join(r.HeaderNames(), ", "), r.timeout)
}

// Send issues the request through client. Only GET and POST are simulated.
func (r Request) Send(client *advanced.HTTPClient) (*demokit.Future[advanced.Response], error) {
	switch r.method {
	case "GET":
		return client.Get(r.URL()), nil
	case "POST":
		return client.Post(r.URL(), r.body), nil
	default:
		return nil, demokit.UnsupportedType("method", r.method)
	}
}

// RequestBuilder requires method and URL. Headers and query parameters
// accumulate; the body and timeout are last-write-wins.
type RequestBuilder struct {
	seal
	req Request
}

// NewRequestBuilder starts a request with DefaultTimeout.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{req: Request{
		headers: make(map[string]string),
		query:   make(url.Values),
		timeout: DefaultTimeout,
	}}
}

func (b *RequestBuilder) Method(method string) *RequestBuilder {
	if b.configurable() {
		b.req.method = strings.ToUpper(method)
	}
	return b
}

// URL must be absolute.
func (b *RequestBuilder) URL(raw string) *RequestBuilder {
	if !b.configurable() {
		return b
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		b.fail(demokit.NewValidationError("url", raw, "must be an absolute URL"))
		return b
	}
	b.req.url = raw
	return b
}

func (b *RequestBuilder) Header(name, value string) *RequestBuilder {
	if b.configurable() {
		b.req.headers[name] = value
	}
	return b
}

// Headers copies every entry of headers.
func (b *RequestBuilder) Headers(headers map[string]string) *RequestBuilder {
	if b.configurable() {
		maps.Copy(b.req.headers, headers)
	}
	return b
}

func (b *RequestBuilder) Query(name, value string) *RequestBuilder {
	if b.configurable() {
		b.req.query.Add(name, value)
	}
	return b
}

func (b *RequestBuilder) Body(body any) *RequestBuilder {
	if b.configurable() {
		b.req.body = body
	}
	return b
}

func (b *RequestBuilder) Timeout(d time.Duration) *RequestBuilder {
	if !b.configurable() {
		return b
	}
	if d <= 0 {
		b.fail(demokit.NewValidationError("timeout", d, "must be positive"))
		return b
	}
	b.req.timeout = d
	return b
}

// Build returns the request with its own copies of headers and query.
func (b *RequestBuilder) Build() (Request, error) {
	if err := b.check(); err != nil {
		return Request{}, err
	}
	if m := missing(field{"method", b.req.method != ""}, field{"url", b.req.url != ""}); len(m) > 0 {
		return Request{}, demokit.NewConstructionError("request", m...)
	}
	b.done()

	r := b.req
	r.headers = maps.Clone(b.req.headers)
	r.query = maps.Clone(b.req.query)
	return r, nil
}
