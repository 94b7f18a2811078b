package myerrors

import (
	"errors"
	"fmt"
)

var (
	ErrFieldIsEmpty         = errors.New("field is empty")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailNotConfirmed    = errors.New("email address not confirmed")
	ErrNotFound             = errors.New("not found")
	ErrNoDriverSelected     = errors.New("no driver selected")
	ErrInvalidTransition    = errors.New("invalid ride status transition")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidRideStatus    = errors.New("invalid ride status")
	ErrInvalidId            = errors.New("invalid identifier")
	ErrInvalidWindow        = errors.New("invalid analytics window")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// QueryError preserves the raw diagnostics of a failed table query so the
// operator sees message/code/detail/hint for support triage.
type QueryError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Detail  string `json:"detail,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (e *QueryError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (code %s)", e.Message, e.Code)
}
