package pkg

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrorsBase is the key used for record-level errors that do not belong
// to a single field.
const FieldErrorsBase = "base"

// FieldErrors accumulates validation failures per field so that one response
// reports every problem at once instead of failing on the first. The JSON
// shape is {"field": ["message", ...]}, the same body the previous version of
// this API produced for 422 responses.

type FieldErrors struct {
	fields map[string][]string
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{fields: map[string][]string{}}
}

func (e *FieldErrors) Add(field, message string) {
	e.fields[field] = append(e.fields[field], message)
}

func (e *FieldErrors) Empty() bool {
	return len(e.fields) == 0
}

// Fields returns the accumulated messages keyed by field name.
func (e *FieldErrors) Fields() map[string][]string {
	return e.fields
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.fields[k], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrOrNil collapses an empty collector to nil so callers can return it
// directly.
func (e *FieldErrors) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}
