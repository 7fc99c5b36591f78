package advanced

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Predicate reports whether a field value is acceptable.
type Predicate func(value string) bool

type rule struct {
	field   string
	check   Predicate
	message string
}

// FormValidator applies field rules in the order they were added.
type FormValidator struct {
	rules []rule
}

// NewFormValidator creates a validator with no rules.
func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

// AddRule registers check for field. message describes the failure; an
// empty message yields "is invalid".
func (v *FormValidator) AddRule(field string, check Predicate, message string) *FormValidator {
	if message == "" {
		message = "is invalid"
	}
	v.rules = append(v.rules, rule{field: field, check: check, message: message})
	return v
}

// Validate returns one "<field> <message>" string per failing rule, in rule
// order. A missing field is validated as the empty string.
func (v *FormValidator) Validate(values map[string]string) []string {
	var errs []string
	for _, r := range v.rules {
		if !r.check(values[r.field]) {
			errs = append(errs, fmt.Sprintf("%s %s", r.field, r.message))
		}
	}
	return errs
}

// FailingFields returns the names of fields with at least one failing rule,
// in first-failure order.
func (v *FormValidator) FailingFields(values map[string]string) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, r := range v.rules {
		if !r.check(values[r.field]) && !seen[r.field] {
			seen[r.field] = true
			fields = append(fields, r.field)
		}
	}
	return fields
}

// Valid reports whether every rule passes.
func (v *FormValidator) Valid(values map[string]string) bool {
	return len(v.Validate(values)) == 0
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required rejects blank values.
func Required() Predicate {
	return func(value string) bool {
		return strings.TrimSpace(value) != ""
	}
}

// MinLength rejects values shorter than n characters.
func MinLength(n int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// Email accepts values shaped like local@domain.tld.
func Email() Predicate {
	return emailPattern.MatchString
}

// Numeric accepts integers.
func Numeric() Predicate {
	return func(value string) bool {
		_, err := strconv.Atoi(value)
		return err == nil
	}
}

// InRange accepts integers between lo and hi inclusive.
func InRange(lo, hi int) Predicate {
	return func(value string) bool {
		n, err := strconv.Atoi(value)
		return err == nil && n >= lo && n <= hi
	}
}
