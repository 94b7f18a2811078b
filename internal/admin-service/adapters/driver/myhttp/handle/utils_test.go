package handle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ride-hail-admin/internal/myerrors"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{myerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{myerrors.ErrEmailNotConfirmed, http.StatusForbidden},
		{myerrors.ErrNotFound, http.StatusNotFound},
		{myerrors.ErrConfirmationRequired, http.StatusPreconditionRequired},
		{myerrors.ErrInvalidTransition, http.StatusConflict},
		{myerrors.ErrNoDriverSelected, http.StatusBadRequest},
		{myerrors.ErrInvalidWindow, http.StatusBadRequest},
		{myerrors.ErrInvalidRole, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", myerrors.ErrInvalidId), http.StatusBadRequest},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := statusFor(c.err); got != c.want {
			t.Errorf("statusFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestServiceErrorKeepsQueryDiagnostics(t *testing.T) {
	rec := httptest.NewRecorder()

	serviceError(rec, &myerrors.QueryError{
		Message: "relation does not exist",
		Code:    "42P01",
		Detail:  "missing table rides",
		Hint:    "run migrations",
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["code"] != "42P01" || body["detail"] == "" || body["hint"] == "" {
		t.Fatalf("diagnostics missing from payload: %v", body)
	}
	if body["error"] != "relation does not exist" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestJsonErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	jsonError(rec, http.StatusBadRequest, fmt.Errorf("nope"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "nope" {
		t.Fatalf("body = %v", body)
	}
}
