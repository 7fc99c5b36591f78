package accessors

import (
	"testing"

	"github.com/GoCodeAlone/demokit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperature(t *testing.T) {
	t.Parallel()
	temp, err := NewTemperature(100)
	require.NoError(t, err)
	assert.InDelta(t, 212, temp.Fahrenheit(), 1e-9)
	assert.InDelta(t, 373.15, temp.Kelvin(), 1e-9)

	require.NoError(t, temp.SetFahrenheit(32))
	assert.InDelta(t, 0, temp.Celsius(), 1e-9)

	err = temp.SetCelsius(-273.16)
	var verr *demokit.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "temperature", verr.Field)
	assert.InDelta(t, 0, temp.Celsius(), 1e-9, "failed set leaves value")

	assert.NoError(t, temp.SetCelsius(AbsoluteZero))
}

func TestBankAccount(t *testing.T) {
	t.Parallel()
	_, err := NewBankAccount(" ", 0)
	assert.ErrorIs(t, err, demokit.ErrValidation)

	acct, err := NewBankAccount("Ada", 10)
	require.NoError(t, err)

	tests := []struct {
		name string
		op   func() error
		want error
	}{
		{"zero deposit", func() error { return acct.Deposit(0) }, demokit.ErrValidation},
		{"negative withdraw", func() error { return acct.Withdraw(-1) }, demokit.ErrValidation},
		{"overdraw", func() error { return acct.Withdraw(11) }, demokit.ErrInsufficientFunds},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, tt.op(), tt.want, tt.name)
	}
	assert.InDelta(t, 10, acct.Balance(), 1e-9)

	require.NoError(t, acct.Withdraw(10))
	assert.Zero(t, acct.Balance())
	assert.Equal(t, []string{"withdraw 10.00"}, acct.History())
}

func TestBankAccount_HistoryIsACopy(t *testing.T) {
	t.Parallel()
	acct, err := NewBankAccount("Ada", 0)
	require.NoError(t, err)
	require.NoError(t, acct.Deposit(5))

	h := acct.History()
	h[0] = "tampered"
	assert.Equal(t, []string{"deposit 5.00"}, acct.History())
}

func TestPerson(t *testing.T) {
	t.Parallel()
	p, err := NewPerson("grace brewster hopper", 85, "grace@navy.mil")
	require.NoError(t, err)
	assert.Equal(t, "GBH", p.Initials())
	assert.True(t, p.IsAdult())

	_, err = NewPerson("x", 200, "x@y.z")
	assert.EqualError(t, err, "invalid age 200: must be between 0 and 150")

	_, err = NewPerson("x", 20, "Grace <grace@navy.mil>")
	assert.ErrorIs(t, err, demokit.ErrValidation)
}

func TestRectangle(t *testing.T) {
	t.Parallel()
	_, err := NewRectangle(0, 1)
	assert.ErrorIs(t, err, demokit.ErrValidation)

	r, err := NewRectangle(2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 10, r.Area(), 1e-9)
	assert.InDelta(t, 14, r.Perimeter(), 1e-9)
	assert.False(t, r.IsSquare())
}
