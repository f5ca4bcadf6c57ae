package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification groups PostgreSQL failures by how a repository reacts
// to them.
type ErrorClassification int

const (
	// Unclassified covers driver errors and codes without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a duplicate key (23505).
	UniqueViolation

	// ForeignKeyViolation is a reference to a missing row (23503).
	ForeignKeyViolation

	// Transient covers connection loss, serialization failures and
	// deadlocks. Such failures are not retried; they are logged as such.
	Transient
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

// PostgresErrorClassifier maps errors returned by the pgx driver to an
// [ErrorClassification].
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. Non-PostgreSQL errors are [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation

	// Class 08 connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40 transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57 operator intervention
		pgerrcode.CannotConnectNow:
		return Transient
	}

	return Unclassified
}
