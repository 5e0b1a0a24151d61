package errs

import (
	"sort"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// FieldError carries per-field validation messages, rendered as the response detail.
type FieldError struct {
	Fields map[string][]string
}

func (e *FieldError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Field builds a single-field validation error marked as ErrDomainValidation.
func Field(field, message string) error {
	return cr.Mark(&FieldError{Fields: map[string][]string{field: {message}}}, ErrDomainValidation)
}

// AsFieldError finds a FieldError anywhere in err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if cr.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
