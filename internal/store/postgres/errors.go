package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"

	"github.com/smellerlabs/aromadb/internal/store"
)

// Postgres error codes translated to the store error taxonomy.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// mapError translates driver-level failures into the store error taxonomy:
// absent rows become store.ErrNotFound, constraint violations become
// *store.ConstraintError, and unreachable-database conditions become
// *store.ConnectionError. Anything else passes through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == codeForeignKeyViolation,
			pqErr.Code == codeUniqueViolation,
			pqErr.Code == codeCheckViolation:
			detail := pqErr.Detail
			if detail == "" {
				detail = pqErr.Message
			}
			return &store.ConstraintError{Constraint: pqErr.Constraint, Detail: detail}
		case pqErr.Code.Class() == "08": // connection exception
			return &store.ConnectionError{Err: pqErr}
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) {
		return &store.ConnectionError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &store.ConnectionError{Err: err}
	}

	return err
}
