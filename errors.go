package demokit

import (
	"errors"
	"fmt"
	"strings"
)

// Framework and lesson errors
var (
	// Runner errors
	ErrOutputNil      = errors.New("runner output writer is nil")
	ErrLoggerNil      = errors.New("runner logger is nil")
	ErrLessonNil      = errors.New("lesson is nil")
	ErrNeverCompleted = errors.New("future never completed: event loop drained")

	// Catalog errors
	ErrLessonAlreadyRegistered = errors.New("lesson already registered")
	ErrLessonFactoryNil        = errors.New("lesson factory is nil")

	// Domain error taxonomy shared by every lesson
	ErrValidation        = errors.New("validation failed")
	ErrConstruction      = errors.New("construction failed")
	ErrMissingField      = errors.New("required field is missing")
	ErrUnsupportedType   = errors.New("unsupported type")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Config errors
	ErrConfigNil                  = errors.New("config is nil")
	ErrConfigNotPointer           = errors.New("config must be a pointer")
	ErrConfigNotStruct            = errors.New("config must be a struct")
	ErrConfigRequiredFieldMissing = errors.New("required field is missing")
	ErrConfigValidationFailed     = errors.New("config validation failed")
	ErrUnsupportedTypeForDefault  = errors.New("unsupported type for default value")
	ErrDefaultValueParseError     = errors.New("failed to parse default value")
	ErrConfigFeederError          = errors.New("config feeder error")
)

// ValidationError reports an input that violates a documented precondition.
// It always names the field and the offending value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, formatValue(e.Value), e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConstructionError reports a builder or factory that could not produce a
// valid object because required fields were left unset.
type ConstructionError struct {
	Product string
	Missing []string
}

// NewConstructionError builds a ConstructionError for product.
func NewConstructionError(product string, missing ...string) *ConstructionError {
	return &ConstructionError{Product: product, Missing: missing}
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot build %s: %s: %s", e.Product, ErrMissingField, strings.Join(e.Missing, ", "))
}

// Is matches both ErrConstruction and ErrMissingField.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction || target == ErrMissingField
}

// UnsupportedType reports a factory discriminator with no registered
// constructor. The message names the bad input.
func UnsupportedType(kind, value string) error {
	return fmt.Errorf("%w: %s %q", ErrUnsupportedType, kind, value)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(val)
	}
}
