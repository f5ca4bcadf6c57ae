package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned for values that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists the fields that failed validation. Fields maps the
// JSON name of a field to a human-readable rule description.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}

	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a [*ValidationError] for a single field.
func NewFieldError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}
