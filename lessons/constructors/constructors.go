// Package constructors shows the ways Go code builds values: plain
// constructor functions, named alternatives, constructors delegating to
// others, validation at construction, defaults, and canonical instances.
package constructors

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/GoCodeAlone/demokit"
	"github.com/dustin/go-humanize"
)

// Point is a mutable 2D point.
type Point struct {
	X, Y float64
}

// NewPoint is the default constructor.
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// Origin is a named constructor for (0, 0).
func Origin() Point { return NewPoint(0, 0) }

// FromPolar builds a point from a radius and an angle in degrees.
func FromPolar(radius, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return NewPoint(round(radius*math.Cos(rad)), round(radius*math.Sin(rad)))
}

// OnXAxis redirects to NewPoint with y fixed at zero.
func OnXAxis(x float64) Point { return NewPoint(x, 0) }

// DistanceTo returns the Euclidean distance to other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

func round(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// Money is an amount in a currency. Constructors reject non-positive
// amounts and unknown currencies.
type Money struct {
	amount   float64
	currency string
}

var currencies = map[string]string{"USD": "$", "EUR": "€", "GBP": "£"}

// NewMoney validates amount and currency.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount <= 0 {
		return Money{}, demokit.NewValidationError("amount", amount, "must be positive")
	}
	currency = strings.ToUpper(currency)
	if _, ok := currencies[currency]; !ok {
		return Money{}, demokit.NewValidationError("currency", currency, "is not supported")
	}
	return Money{amount: amount, currency: currency}, nil
}

// Dollars is a named constructor for USD.
func Dollars(amount float64) (Money, error) { return NewMoney(amount, "USD") }

// FromCents builds USD from an integer number of cents.
func FromCents(cents int64) (Money, error) { return NewMoney(float64(cents)/100, "USD") }

func (m Money) Amount() float64  { return m.amount }
func (m Money) Currency() string { return m.currency }

func (m Money) String() string {
	return currencies[m.currency] + humanize.FormatFloat("#,###.##", m.amount)
}

// Student gets defaults for every field the caller leaves out.
type Student struct {
	Name    string
	Grade   int
	Courses []string
	Active  bool
	Advisor string
}

// StudentOption overrides one default.
type StudentOption func(*Student)

func WithGrade(grade int) StudentOption { return func(s *Student) { s.Grade = grade } }

func WithCourses(courses ...string) StudentOption {
	return func(s *Student) { s.Courses = append([]string(nil), courses...) }
}

func WithAdvisor(name string) StudentOption { return func(s *Student) { s.Advisor = name } }

func Inactive() StudentOption { return func(s *Student) { s.Active = false } }

// NewStudent starts from grade 1, no courses, active, advisor "unassigned".
func NewStudent(name string, opts ...StudentOption) (*Student, error) {
	if strings.TrimSpace(name) == "" {
		return nil, demokit.NewValidationError("name", name, "must not be empty")
	}
	s := &Student{Name: name, Grade: 1, Courses: []string{}, Active: true, Advisor: "unassigned"}
	for _, opt := range opts {
		opt(s)
	}
	if s.Grade < 1 || s.Grade > 12 {
		return nil, demokit.NewValidationError("grade", s.Grade, "must be between 1 and 12")
	}
	return s, nil
}

func (s *Student) String() string {
	status := "active"
	if !s.Active {
		status = "inactive"
	}
	return fmt.Sprintf("%s, grade %d, %s, advisor %s, courses %v", s.Name, s.Grade, status, s.Advisor, s.Courses)
}

// ConstPoint is an immutable point. Equal coordinates always yield the
// same canonical instance.
type ConstPoint struct {
	x, y int
}

var canonical = struct {
	sync.Mutex
	points map[[2]int]*ConstPoint
}{points: make(map[[2]int]*ConstPoint)}

// Const returns the canonical ConstPoint for (x, y).
func Const(x, y int) *ConstPoint {
	canonical.Lock()
	defer canonical.Unlock()

	key := [2]int{x, y}
	if p, ok := canonical.points[key]; ok {
		return p
	}
	p := &ConstPoint{x: x, y: y}
	canonical.points[key] = p
	return p
}

func (p *ConstPoint) X() int { return p.x }
func (p *ConstPoint) Y() int { return p.y }

func (p *ConstPoint) String() string { return fmt.Sprintf("(%d, %d)", p.x, p.y) }
