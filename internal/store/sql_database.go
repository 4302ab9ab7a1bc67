package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/migrations"
)

// DB is a database handle bound to one SQL dialect. It carries the query
// builder with the dialect's placeholder format and the matching error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var format sq.PlaceholderFormat = sq.Dollar
	if dialect == migrations.DialectSQLite {
		format = sq.Question
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(format),
		errorClassificator: classifier,
		logger:             log,
	}
}

// NewDB opens the database selected by the DSN scheme:
// "postgres://" and "postgresql://" use PostgreSQL, "sqlite:", "file:"
// and plain file paths use SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.Contains(cfg.DSN, "://"):
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN[:strings.Index(cfg.DSN, "://")])
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Dialect returns the migrations dialect name of the database.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// maxTxAttempts bounds how many times withTx runs a transaction whose
// failure is classified as [Retryable].
const maxTxAttempts = 3

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. A retryable failure runs fn again
// in a fresh transaction, up to maxTxAttempts times.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		if err = db.runTx(ctx, fn); err == nil || !db.isRetryable(err) {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withTx").
			Int("attempt", attempt).
			Msg("transaction failed with a retryable error")
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.runTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.runTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// isRetryable reports whether a failed transaction may succeed when run
// again. Cancelled contexts are never retried, lost insert races always are.
func (db *DB) isRetryable(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, errConcurrentInsert):
		return true
	case db.errorClassificator == nil:
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation reports whether err is a unique constraint violation of
// the database's dialect.
func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}
