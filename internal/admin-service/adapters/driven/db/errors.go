package db

import (
	"errors"
	"fmt"

	"ride-hail-admin/internal/myerrors"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapQueryError keeps the raw Postgres diagnostics (message, code, detail,
// hint) attached to failed queries so handlers can surface them verbatim.
func wrapQueryError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &myerrors.QueryError{
			Message: pgErr.Message,
			Code:    pgErr.Code,
			Detail:  pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
