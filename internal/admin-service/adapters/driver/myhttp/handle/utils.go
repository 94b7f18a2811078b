package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"ride-hail-admin/internal/myerrors"
)

const WaitTime = 10

// jsonResponse writes the given data as a JSON-encoded HTTP response with status code 200 OK.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// jsonError writes an error response as JSON with the specified HTTP status code.
func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

// JsonError is the exported variant used by middleware.
func JsonError(w http.ResponseWriter, code int, err error) {
	jsonError(w, code, err)
}

// serviceError maps domain errors onto HTTP statuses. Database errors keep
// their full diagnostics in the payload so the operator sees what the
// database said, not a generic failure.
func serviceError(w http.ResponseWriter, err error) {
	var qerr *myerrors.QueryError
	if errors.As(err, &qerr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  qerr.Message,
			"code":   qerr.Code,
			"detail": qerr.Detail,
			"hint":   qerr.Hint,
		})
		return
	}

	jsonError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, myerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, myerrors.ErrEmailNotConfirmed):
		return http.StatusForbidden
	case errors.Is(err, myerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, myerrors.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, myerrors.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, myerrors.ErrFieldIsEmpty),
		errors.Is(err, myerrors.ErrInvalidId),
		errors.Is(err, myerrors.ErrInvalidRole),
		errors.Is(err, myerrors.ErrInvalidRideStatus),
		errors.Is(err, myerrors.ErrInvalidWindow),
		errors.Is(err, myerrors.ErrNoDriverSelected):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
