package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
	"github.com/MKhiriev/go-deck-builder/models"
)

// authService registers users with bcrypt password hashes and checks
// login attempts against them.
type authService struct {
	userRepository store.UserRepository

	// bcryptCost is the work factor used for new password hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by userRepository.
// The returned service holds no mutable state.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register hashes the password and persists a new user.
//
// A taken username or email surfaces as [store.ErrUserAlreadyExists].
func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(form.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         form.Name,
		Email:        form.Email,
		Username:     form.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Authenticate returns the user whose username and password match the form.
//
// An unknown username and a wrong password both return
// [ErrInvalidCredentials]; the cause is only logged.
func (a *authService) Authenticate(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("username", form.Username).Msg("login for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", form.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, form.Password); err != nil {
		log.Info().Err(err).Int64("id", user.UserID).Str("username", user.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
