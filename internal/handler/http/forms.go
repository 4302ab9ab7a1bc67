package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
	"github.com/MKhiriev/go-deck-builder/internal/validators"
	"github.com/MKhiriev/go-deck-builder/models"
)

const (
	formRegister = "register"
	formLogin    = "login"
	formSearch   = "search"
	formDeck     = "deck"

	// fieldForm keys errors that belong to the whole form.
	fieldForm = "form"

	// maxFormBytes caps urlencoded request bodies.
	maxFormBytes = 64 << 10
)

var formFields = map[string][]string{
	formRegister: {"name", "email", "username", "password"},
	formLogin:    {"username", "password"},
	formSearch:   {"card_name"},
	formDeck:     {"commander_name"},
}

// untrimmedFields are hashed exactly as submitted.
var untrimmedFields = map[string]struct{}{
	validators.FieldPassword: {},
}

// parseForm reads an urlencoded body into r.PostForm. Values other than
// passwords are trimmed.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingForm, err)
	}
	for key, values := range r.PostForm {
		if _, keep := untrimmedFields[key]; keep {
			continue
		}
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		r.PostForm[key] = values
	}
	return nil
}

func registerFormFrom(r *http.Request) models.RegisterForm {
	return models.RegisterForm{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
}

func loginFormFrom(r *http.Request) models.LoginForm {
	return models.LoginForm{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
}

func searchFormFrom(r *http.Request) models.SearchForm {
	return models.SearchForm{CardName: r.PostForm.Get("card_name")}
}

func deckFormFrom(r *http.Request) models.DeckForm {
	return models.DeckForm{CommanderName: r.PostForm.Get("commander_name")}
}

// newFormView describes an empty form page.
func newFormView(form string) models.FormView {
	return models.FormView{Form: form, Fields: formFields[form]}
}

// writeForm answers with the form page. Passwords are never echoed back.
func writeForm(w http.ResponseWriter, r *http.Request, view models.FormView, status int) {
	delete(view.Values, "password")
	if _, err := utils.WriteJSON(w, view, status); err != nil {
		logger.FromRequest(r).Err(err).Str("form", view.Form).Msg("error writing form")
	}
}

// writeFormError answers with the form page listing err inline. Field
// errors of a failed validation are listed per field; any other error is
// reported for the whole form.
func writeFormError(w http.ResponseWriter, r *http.Request, form string, values map[string]string, err error) {
	view := newFormView(form)
	view.Values = values

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		view.Errors = fieldErrs.Messages()
	} else {
		view.Errors = map[string]string{fieldForm: formMessage(err)}
	}

	kind, status := classify(err)
	logger.FromRequest(r).Warn().
		Err(err).
		Str("kind", string(kind)).
		Str("form", form).
		Msg("form rejected")

	writeForm(w, r, view, status)
}

// formMessage hides internal causes from the page.
func formMessage(err error) string {
	for _, rule := range kindRules {
		if errors.Is(err, rule.target) && rule.kind != kindInternal {
			return rule.target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

func formValues(r *http.Request, form string) map[string]string {
	values := make(map[string]string, len(formFields[form]))
	for _, field := range formFields[form] {
		if v := r.PostForm.Get(field); v != "" {
			values[field] = v
		}
	}
	return values
}

// isInlineFormError reports errors that keep the user on the form page.
func isInlineFormError(err error) bool {
	kind, _ := classify(err)
	switch kind {
	case kindValidation, kindAuth, kindUniqueViolation:
		return true
	}
	return false
}
