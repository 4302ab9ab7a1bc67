package store

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "name", "email", "username", "password"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(newDBFromSQL(db), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "Alice", Email: "alice@example.com", Username: "alice", PasswordHash: "hash"}

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, user.Name, user.Email, user.Username, user.PasswordHash)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,username,password)")).
		WithArgs(user.Name, user.Email, user.Username, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "hash", created.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolationOnScan(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "Alice", "alice@example.com", "alice", "hash").
		RowError(0, pgError(pgerrcode.UniqueViolation))

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.NotErrorIs(t, err, ErrScanningRow)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(5, "Alice", "alice@example.com", "alice", "hash")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, username, password FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(testContext(), "alice")
	require.NoError(t, err)

	assert.Equal(t, models.User{UserID: 5, Name: "Alice", Email: "alice@example.com", Username: "alice", PasswordHash: "hash"}, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUsername(testContext(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("alice").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByUsername(testContext(), "alice")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
