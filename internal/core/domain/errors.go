package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateSKU      = errors.New("duplicate sku")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")

	// ErrCorruptSnapshot is returned by snapshot repositories when the stored
	// record cannot be decoded or has an unsupported version.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// ValidationError rejects an operation without changing state. Fields maps
// the offending input field to a human readable reason.
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}
