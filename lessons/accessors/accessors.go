// Package accessors shows getters and setters in Go: unexported fields
// behind methods, computed properties, read-only state and setters that
// validate before they assign.
package accessors

import (
	"fmt"
	"math"
	"net/mail"
	"strings"

	"github.com/GoCodeAlone/demokit"
	"github.com/dustin/go-humanize"
)

// AbsoluteZero is the lowest temperature in Celsius.
const AbsoluteZero = -273.15

// Temperature stores Celsius and exposes Fahrenheit and Kelvin as computed
// accessors.
type Temperature struct {
	celsius float64
}

// NewTemperature validates celsius through the setter.
func NewTemperature(celsius float64) (*Temperature, error) {
	t := &Temperature{}
	if err := t.SetCelsius(celsius); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Temperature) Celsius() float64 { return t.celsius }

// SetCelsius rejects values below absolute zero and leaves t unchanged.
func (t *Temperature) SetCelsius(c float64) error {
	if c < AbsoluteZero {
		return demokit.NewValidationError("temperature", c, "below absolute zero")
	}
	t.celsius = c
	return nil
}

func (t *Temperature) Fahrenheit() float64 { return t.celsius*9/5 + 32 }

// SetFahrenheit converts to Celsius and validates through SetCelsius.
func (t *Temperature) SetFahrenheit(f float64) error {
	return t.SetCelsius((f - 32) * 5 / 9)
}

func (t *Temperature) Kelvin() float64 { return t.celsius - AbsoluteZero }

// BankAccount exposes its balance read-only; it only changes through
// Deposit and Withdraw.
type BankAccount struct {
	owner   string
	balance float64
	history []string
}

// NewBankAccount opens an account. The owner must not be blank.
func NewBankAccount(owner string, initial float64) (*BankAccount, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, demokit.NewValidationError("owner", owner, "must not be empty")
	}
	if initial < 0 {
		return nil, demokit.NewValidationError("initial deposit", initial, "must not be negative")
	}
	return &BankAccount{owner: owner, balance: initial}, nil
}

func (a *BankAccount) Owner() string    { return a.owner }
func (a *BankAccount) Balance() float64 { return a.balance }

// FormattedBalance renders the balance with thousands separators.
func (a *BankAccount) FormattedBalance() string {
	return "$" + humanize.FormatFloat("#,###.##", a.balance)
}

// History returns a copy of the transaction log.
func (a *BankAccount) History() []string {
	return append([]string(nil), a.history...)
}

// Deposit adds a positive amount.
func (a *BankAccount) Deposit(amount float64) error {
	if amount <= 0 {
		return demokit.NewValidationError("deposit amount", amount, "must be positive")
	}
	a.balance += amount
	a.history = append(a.history, fmt.Sprintf("deposit %.2f", amount))
	return nil
}

// Withdraw removes a positive amount no larger than the balance.
func (a *BankAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return demokit.NewValidationError("withdrawal amount", amount, "must be positive")
	}
	if amount > a.balance {
		return fmt.Errorf("%w: balance %.2f, requested %.2f", demokit.ErrInsufficientFunds, a.balance, amount)
	}
	a.balance -= amount
	a.history = append(a.history, fmt.Sprintf("withdraw %.2f", amount))
	return nil
}

// Person validates every field in its setters.
type Person struct {
	name  string
	age   int
	email string
}

// NewPerson builds a Person through the validating setters.
func NewPerson(name string, age int, email string) (*Person, error) {
	p := &Person{}
	for _, set := range []func() error{
		func() error { return p.SetName(name) },
		func() error { return p.SetAge(age) },
		func() error { return p.SetEmail(email) },
	} {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Person) Name() string  { return p.name }
func (p *Person) Age() int      { return p.age }
func (p *Person) Email() string { return p.email }

// SetName trims name and rejects blanks.
func (p *Person) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return demokit.NewValidationError("name", name, "must not be empty")
	}
	p.name = name
	return nil
}

// SetAge accepts 0 to 150.
func (p *Person) SetAge(age int) error {
	if age < 0 || age > 150 {
		return demokit.NewValidationError("age", age, "must be between 0 and 150")
	}
	p.age = age
	return nil
}

// SetEmail accepts a bare address and stores it lowercased.
func (p *Person) SetEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return demokit.NewValidationError("email", email, "must be a valid email address")
	}
	p.email = strings.ToLower(email)
	return nil
}

// IsAdult is a computed property.
func (p *Person) IsAdult() bool { return p.age >= 18 }

// Initials is a computed property built from every word of the name.
func (p *Person) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(p.name) {
		b.WriteString(strings.ToUpper(word[:1]))
	}
	return b.String()
}

// Rectangle keeps positive dimensions and computes everything else.
type Rectangle struct {
	width, height float64
}

// NewRectangle validates both dimensions.
func NewRectangle(width, height float64) (*Rectangle, error) {
	r := &Rectangle{}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	if err := r.SetHeight(height); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rectangle) Width() float64  { return r.width }
func (r *Rectangle) Height() float64 { return r.height }

func (r *Rectangle) SetWidth(w float64) error {
	if w <= 0 {
		return demokit.NewValidationError("width", w, "must be positive")
	}
	r.width = w
	return nil
}

func (r *Rectangle) SetHeight(h float64) error {
	if h <= 0 {
		return demokit.NewValidationError("height", h, "must be positive")
	}
	r.height = h
	return nil
}

func (r *Rectangle) Area() float64      { return r.width * r.height }
func (r *Rectangle) Perimeter() float64 { return 2 * (r.width + r.height) }
func (r *Rectangle) Diagonal() float64  { return math.Hypot(r.width, r.height) }
func (r *Rectangle) IsSquare() bool     { return r.width == r.height }

// FileSize is a byte count with a human-readable accessor.
type FileSize uint64

// Human renders the size in SI units.
func (s FileSize) Human() string { return humanize.Bytes(uint64(s)) }
