package db

import (
	"errors"
	"fmt"
	"testing"

	"ride-hail-admin/internal/myerrors"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapQueryErrorKeepsPostgresDiagnostics(t *testing.T) {
	pgErr := &pgconn.PgError{
		Message: "duplicate key value violates unique constraint",
		Code:    "23505",
		Detail:  "Key (email)=(a@b.co) already exists.",
		Hint:    "use a different email",
	}

	err := wrapQueryError("insert profile", fmt.Errorf("exec: %w", pgErr))

	var qerr *myerrors.QueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected QueryError, got %T: %v", err, err)
	}
	if qerr.Code != "23505" || qerr.Detail == "" || qerr.Hint == "" {
		t.Fatalf("diagnostics lost: %+v", qerr)
	}
	if qerr.Message != pgErr.Message {
		t.Fatalf("message = %q", qerr.Message)
	}
}

func TestWrapQueryErrorWrapsPlainErrors(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapQueryError("query rides", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("cause not wrapped: %v", err)
	}
	var qerr *myerrors.QueryError
	if errors.As(err, &qerr) {
		t.Fatalf("non-postgres error became QueryError: %v", err)
	}
}
