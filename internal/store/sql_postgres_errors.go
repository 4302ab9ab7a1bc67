package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withTx] whether a failed transaction may
// succeed when run again.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be
	// transient, including constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// conflicts, deadlocks and a busy database.
	Retryable
)

// retryablePgCodes lists the SQLSTATE codes of transient PostgreSQL
// failures. See https://www.postgresql.org/docs/current/errcodes-appendix.html.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.TransactionRollback:    {}, // 40000
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.CannotConnectNow:       {}, // 57P03
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for the codes in retryablePgCodes and
// [NonRetryable] for everything else, including non-PostgreSQL errors.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if _, ok := retryablePgCodes[postgresError(err)]; ok {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505, raised when
// a username or email is already taken.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// postgresError returns the SQLSTATE code carried by err, or "" when err is
// not a PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
