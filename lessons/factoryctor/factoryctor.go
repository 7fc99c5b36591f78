// Package factoryctor shows constructors that decide what to return instead
// of always allocating: a lazily created singleton, per-name cached
// instances, a discriminator-driven factory, decoding constructors and an
// object pool.
package factoryctor

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/GoCodeAlone/demokit"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrPoolExhausted is returned by Acquire when every slot is in use.
var ErrPoolExhausted = errors.New("connection pool exhausted")

// DatabaseConnection is created at most once per ConnectionFactory.
type DatabaseConnection struct {
	ID   uuid.UUID
	Host string
	Port int
}

// Query describes running sql on the connection.
func (c *DatabaseConnection) Query(sql string) string {
	return fmt.Sprintf("%s:%d ran: %s", c.Host, c.Port, sql)
}

// ConnectionFactory lazily creates one DatabaseConnection. Only the
// arguments of the first call take effect.
type ConnectionFactory struct {
	once sync.Once
	conn *DatabaseConnection
}

// Connect returns the factory's single connection, creating it on first use.
func (f *ConnectionFactory) Connect(host string, port int) *DatabaseConnection {
	f.once.Do(func() {
		f.conn = &DatabaseConnection{ID: uuid.New(), Host: host, Port: port}
	})
	return f.conn
}

var database ConnectionFactory

// Database is the process-wide accessor for the shared connection.
func Database(host string, port int) *DatabaseConnection {
	return database.Connect(host, port)
}

// AppLogger is cached per name: asking for the same name twice returns the
// same logger.
type AppLogger struct {
	Name  string
	lines []string
}

// Log records msg and returns the formatted line.
func (l *AppLogger) Log(msg string) string {
	line := fmt.Sprintf("[%s] %s", strings.ToUpper(l.Name), msg)
	l.lines = append(l.lines, line)
	return line
}

// Lines returns a copy of everything logged so far.
func (l *AppLogger) Lines() []string {
	return append([]string(nil), l.lines...)
}

// LoggerCache hands out one AppLogger per name.
type LoggerCache struct {
	mu      sync.Mutex
	loggers map[string]*AppLogger
}

// NewLoggerCache creates an empty cache.
func NewLoggerCache() *LoggerCache {
	return &LoggerCache{loggers: make(map[string]*AppLogger)}
}

// Get returns the logger for name, creating it on first request.
func (c *LoggerCache) Get(name string) *AppLogger {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.loggers[name]; ok {
		return l
	}
	l := &AppLogger{Name: name}
	c.loggers[name] = l
	return l
}

// Len returns how many distinct loggers exist.
func (c *LoggerCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.loggers)
}

// Shape is what NewShape produces.
type Shape interface {
	Kind() string
	Area() float64
}

type circle struct{ radius float64 }

func (circle) Kind() string    { return "circle" }
func (c circle) Area() float64 { return math.Pi * c.radius * c.radius }

type square struct{ side float64 }

func (square) Kind() string    { return "square" }
func (s square) Area() float64 { return s.side * s.side }

type rectangle struct{ width, height float64 }

func (rectangle) Kind() string    { return "rectangle" }
func (r rectangle) Area() float64 { return r.width * r.height }

var shapeFactories = map[string]struct {
	dims  int
	build func(d []float64) Shape
}{
	"circle":    {1, func(d []float64) Shape { return circle{d[0]} }},
	"square":    {1, func(d []float64) Shape { return square{d[0]} }},
	"rectangle": {2, func(d []float64) Shape { return rectangle{d[0], d[1]} }},
}

// NewShape picks the concrete shape for kind. Unknown kinds fail with
// demokit.ErrUnsupportedType naming the input.
func NewShape(kind string, dims ...float64) (Shape, error) {
	factory, ok := shapeFactories[strings.ToLower(kind)]
	if !ok {
		return nil, demokit.UnsupportedType("shape", kind)
	}
	if len(dims) != factory.dims {
		return nil, demokit.NewValidationError("dimensions", dims, fmt.Sprintf("%s needs %d", kind, factory.dims))
	}
	for _, d := range dims {
		if d <= 0 {
			return nil, demokit.NewValidationError("dimension", d, "must be positive")
		}
	}
	return factory.build(dims), nil
}

// User is decoded by UserFromJSON.
type User struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// UserFromJSON decodes data and checks the required fields.
func UserFromJSON(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%w: decoding user: %w", demokit.ErrValidation, err)
	}
	if u.ID <= 0 {
		return nil, demokit.NewValidationError("id", u.ID, "must be positive")
	}
	if u.Name == "" {
		return nil, demokit.NewValidationError("name", u.Name, "must not be empty")
	}
	if u.Roles == nil {
		u.Roles = []string{"viewer"}
	}
	return &u, nil
}

// UserFromMap builds a User from loosely typed values by round-tripping
// them through JSON.
func UserFromMap(values map[string]any) (*User, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return UserFromJSON(data)
}

// JSON encodes the user.
func (u *User) JSON() string {
	out, err := json.MarshalToString(u)
	if err != nil {
		return "{}"
	}
	return out
}

// PooledConnection is one pool slot.
type PooledConnection struct {
	ID    int
	Uses  int
	inUse bool
}

// ConnectionPool creates at most size connections and hands back free ones
// before creating new ones.
type ConnectionPool struct {
	mu    sync.Mutex
	size  int
	conns []*PooledConnection
}

// NewConnectionPool creates an empty pool of the given capacity.
func NewConnectionPool(size int) (*ConnectionPool, error) {
	if size <= 0 {
		return nil, demokit.NewValidationError("pool size", size, "must be positive")
	}
	return &ConnectionPool{size: size}, nil
}

// Acquire returns the first free connection, a new one while below
// capacity, or ErrPoolExhausted.
func (p *ConnectionPool) Acquire() (*PooledConnection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.conns {
		if !c.inUse {
			c.inUse = true
			c.Uses++
			return c, nil
		}
	}
	if len(p.conns) >= p.size {
		return nil, fmt.Errorf("%w: %d of %d in use", ErrPoolExhausted, len(p.conns), p.size)
	}
	c := &PooledConnection{ID: len(p.conns) + 1, Uses: 1, inUse: true}
	p.conns = append(p.conns, c)
	return c, nil
}

// Release returns c to the pool. Releasing nil, a connection acquired from
// another pool, or one that is already free is a validation error.
func (p *ConnectionPool) Release(c *PooledConnection) error {
	if c == nil {
		return demokit.NewValidationError("connection", nil, "is nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !slices.Contains(p.conns, c) {
		return demokit.NewValidationError("connection", c.ID, "does not belong to this pool")
	}
	if !c.inUse {
		return demokit.NewValidationError("connection", c.ID, "already released")
	}
	c.inUse = false
	return nil
}

// Stats reports created and in-use connection counts.
func (p *ConnectionPool) Stats() (created, inUse int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.conns {
		if c.inUse {
			inUse++
		}
	}
	return len(p.conns), inUse
}
