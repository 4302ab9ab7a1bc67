package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/validators"
	"github.com/MKhiriev/go-deck-builder/models"
)

// authValidationService rejects malformed forms before they reach the
// wrapped AuthService.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &authValidationService{
		validator: validators.NewFormValidator(),
	}
}

func (v *authValidationService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("error during registration form validation: %w", err)
	}

	return v.inner.Register(ctx, form)
}

func (v *authValidationService) Authenticate(ctx context.Context, form models.LoginForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("error during login form validation: %w", err)
	}

	return v.inner.Authenticate(ctx, form)
}

func (v *authValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
