package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches any *ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrDivision matches any *DivisionError.
	ErrDivision = errors.New("division error")
)

// ValidationError reports an input record that is missing required fields
// or is otherwise malformed.
type ValidationError struct {
	Record string
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Record, e.Reason)
	}
	return fmt.Sprintf("%s: missing required field(s): %s", e.Record, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DivisionError reports a divisor or price that must be strictly positive.
type DivisionError struct {
	Quantity string
	Value    float64
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s must be > 0 (got %g)", e.Quantity, e.Value)
}

func (e *DivisionError) Is(target error) bool { return target == ErrDivision }
