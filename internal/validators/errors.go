package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [FieldErrors] value.
	ErrValidation = errors.New("validation failed")

	ErrRequired     = errors.New("this field is required")
	ErrTooLong      = errors.New("value is too long")
	ErrInvalidEmail = errors.New("invalid email address")
)

// FieldErrors maps a form field name to the first rule it broke.
// It matches [ErrValidation] and each contained error with [errors.Is].
type FieldErrors map[string]error

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f].Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	for _, err := range fe {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Messages flattens the errors into field -> message for form views.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for f, err := range fe {
		out[f] = err.Error()
	}
	return out
}

func (fe FieldErrors) add(field string, err error) {
	if _, ok := fe[field]; !ok {
		fe[field] = err
	}
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
