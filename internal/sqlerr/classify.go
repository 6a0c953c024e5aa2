package sqlerr

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind is the coarse classification repository callers branch on.
type Kind int

const (
	// None is the Kind of a nil error.
	None Kind = iota
	Unknown
	NotNull
	Unique
	ForeignKey
	Check
	Connection
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case NotNull:
		return "not_null_violation"
	case Unique:
		return "unique_violation"
	case ForeignKey:
		return "foreign_key_violation"
	case Check:
		return "check_violation"
	case Connection:
		return "connection_error"
	default:
		return "unknown"
	}
}

// Classify inspects the structured data of err and returns its Kind.
//
// Constraint violations are recognized by SQLSTATE, connectivity problems
// by the driver's connect error, timeouts and network errors. The message
// text is never consulted.
func Classify(err error) Kind {
	if err == nil {
		return None
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return kindForCode(MapCode(pgErr.Code))
	}

	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return kindForCode(sqlErr.Code)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Connection
	}

	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return Connection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Connection
	}

	return Unknown
}

// IsNotNullViolation reports whether err is a NOT NULL constraint failure.
func IsNotNullViolation(err error) bool {
	return Classify(err) == NotNull
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return Classify(err) == Unique
}

// IsConnectionError reports whether err means the store was unreachable.
func IsConnectionError(err error) bool {
	return Classify(err) == Connection
}

func kindForCode(code Code) Kind {
	switch code {
	case NotNullViolation:
		return NotNull
	case UniqueViolation:
		return Unique
	case ForeignKeyViolation:
		return ForeignKey
	case CheckViolation:
		return Check
	case ConnectionFailure:
		return Connection
	default:
		return Unknown
	}
}
