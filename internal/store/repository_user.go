package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned UserID.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
//   - scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		return models.User{}, r.createUserFailed(ctx, user, err)
	}

	// scan saved user from db; SQLite reports constraint failures of
	// INSERT ... RETURNING only at this step
	var created models.User
	if err = row.Scan(&created.UserID, &created.Name, &created.Email, &created.Username, &created.PasswordHash); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, r.createUserFailed(ctx, user, err)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *userRepository) createUserFailed(ctx context.Context, user models.User, err error) error {
	log := logger.FromContext(ctx)
	if r.db.isUniqueViolation(err) {
		log.Warn().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user already exists")
		return ErrUserAlreadyExists
	}
	log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
	return fmt.Errorf("unexpected DB error: %w", err)
}

// FindUserByUsername retrieves the user whose Username matches username.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Name, &found.Email, &found.Username, &found.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
