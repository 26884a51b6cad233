package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"rental/shared/constant"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrSerialization is returned when Postgres aborts a transaction to keep it serializable.
	// The whole transaction may be retried.
	ErrSerialization = errors.New("postgres: serialization failure")
	// ErrExclusionViolation is returned when an insert or update breaks an exclusion constraint.
	ErrExclusionViolation = errors.New("postgres: exclusion constraint violation")
	// ErrUniqueViolation is returned when a unique constraint is broken.
	ErrUniqueViolation = errors.New("postgres: unique constraint violation")
	// ErrForeignKeyViolation is returned when a row is still referenced by another table.
	ErrForeignKeyViolation = errors.New("postgres: foreign key violation")
	// ErrUnavailable is returned when the database cannot be reached.
	ErrUnavailable = errors.New("postgres: unavailable")
)

// Classify maps driver errors onto the package sentinels, keeping the original error in the chain.
// Errors it does not recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrSerialization) || errors.Is(err, ErrExclusionViolation) ||
		errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) ||
		errors.Is(err, ErrUnavailable) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)

		switch {
		case code == constant.PqErrorCodeSerializationFailure, code == constant.PqErrorCodeDeadlockDetected:
			return fmt.Errorf("%w: %w", ErrSerialization, err)
		case code == constant.PqErrorCodeExclusionViolation:
			return fmt.Errorf("%w: %w", ErrExclusionViolation, err)
		case code == constant.PqErrorCodeUniqueViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case code == constant.PqErrorCodeFkViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case strings.HasPrefix(code, constant.PqErrorClassConnection),
			code == constant.PqErrorCodeAdminShutdown,
			code == constant.PqErrorCodeCrashShutdown,
			code == constant.PqErrorCodeCannotConnectNow:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}

		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}

// IsRetryable reports whether a classified error is a transient fault worth another attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSerialization) || errors.Is(err, ErrUnavailable)
}
