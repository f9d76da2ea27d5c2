package errs

import (
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "minimum_price_per_night", "error": "must not be negative" }
type FieldError struct {
	// Field is the criteria or input field the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// Kind classifies an Error. It is a string-based enum so it prints well
// in logs and JSON.
type Kind string

const (
	// KindInvalidCriteria means a present search criterion had a value the
	// query builder refuses to bind (negative price, rating out of range...).
	KindInvalidCriteria Kind = "invalid_criteria"

	// KindInvalidInput means an insert payload was rejected, either by
	// validation or by a database constraint.
	KindInvalidInput Kind = "invalid_input"

	// KindNotFound means a lookup matched no row.
	KindNotFound Kind = "not_found"

	// KindDatabase means the executor failed for a reason the caller cannot fix.
	KindDatabase Kind = "database"
)

// Error is the single error type returned by this module.
//
// Fields:
//   - Kind: what went wrong, compared by errors.Is.
//   - Code: machine-friendly code (e.g. "USER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Errors: per-field errors, set for validation failures.
//   - err: the underlying cause (driver error), reachable through Unwrap.
type Error struct {
	Kind    Kind         `json:"kind"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	err error
}

// Error makes *Error satisfy the built-in error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.Message + ": " + e.err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause so errors.As can still reach a
// *pgconn.PgError behind a database error.
func (e *Error) Unwrap() error {
	return e.err
}

// Is customizes how errors.Is(...) treats Error.
//
// Two errors match when their kinds match, so a caller can write
// errors.Is(err, errs.ErrNotFound) regardless of message or code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithMessage returns a *copy* of this Error with Message replaced.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: message,
		Errors:  e.Errors,
		err:     e.err,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"invalid criteria" -> "INVALID_CRITERIA"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
