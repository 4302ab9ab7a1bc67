package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-deck-builder/models"
)

// Form field names, as submitted by the pages.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldUsername      = "username"
	FieldPassword      = "password"
	FieldCardName      = "card_name"
	FieldCommanderName = "commander_name"
)

// Column limits of the users, cards and decks tables.
const (
	MaxNameLength     = 50
	MaxEmailLength    = 50
	MaxUsernameLength = 25
	MaxCardNameLength = 150
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

type FormValidator struct{}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate checks a submitted form. Every failing field is reported in the
// returned [FieldErrors]; the first failing rule per field wins.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterForm:
		return v.validateRegisterForm(ctx, value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(ctx, *value, fields...)

	case models.LoginForm:
		return v.validateLoginForm(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLoginForm(ctx, *value, fields...)

	case models.SearchForm:
		return v.validateSearchForm(ctx, value, fields...)
	case *models.SearchForm:
		return v.validateSearchForm(ctx, *value, fields...)

	case models.DeckForm:
		return v.validateDeckForm(ctx, value, fields...)
	case *models.DeckForm:
		return v.validateDeckForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateRegisterForm(_ context.Context, form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldUsername, FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			checkText(errs, f, form.Name, MaxNameLength)
		case FieldEmail:
			checkText(errs, f, form.Email, MaxEmailLength)
			if _, failed := errs[f]; !failed && !isEmail(form.Email) {
				errs.add(f, ErrInvalidEmail)
			}
		case FieldUsername:
			checkText(errs, f, form.Username, MaxUsernameLength)
		case FieldPassword:
			checkPassword(errs, f, form.Password)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

func (v *FormValidator) validateLoginForm(_ context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			checkText(errs, f, form.Username, MaxUsernameLength)
		case FieldPassword:
			checkPassword(errs, f, form.Password)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

func (v *FormValidator) validateSearchForm(_ context.Context, form models.SearchForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCardName}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldCardName:
			checkText(errs, f, form.CardName, MaxCardNameLength)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

func (v *FormValidator) validateDeckForm(_ context.Context, form models.DeckForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCommanderName}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldCommanderName:
			checkText(errs, f, form.CommanderName, MaxCardNameLength)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs.orNil()
}

func checkRequired(errs FieldErrors, field, value string) {
	if value == "" {
		errs.add(field, ErrRequired)
	}
}

// checkPassword requires a non-empty password of at most MaxPasswordBytes
// bytes. Surrounding spaces are part of the password.
func checkPassword(errs FieldErrors, field, value string) {
	checkRequired(errs, field, value)
	if len(value) > MaxPasswordBytes {
		errs.add(field, fmt.Errorf("%w: at most %d bytes", ErrTooLong, MaxPasswordBytes))
	}
}

// checkText requires a non-blank value of at most maxLen characters.
func checkText(errs FieldErrors, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		errs.add(field, ErrRequired)
		return
	}
	if utf8.RuneCountInString(value) > maxLen {
		errs.add(field, fmt.Errorf("%w: at most %d characters", ErrTooLong, maxLen))
	}
}

// isEmail accepts a bare address such as "alice@example.com"; display
// names are rejected.
func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}
