package errs

// Sentinels for errors.Is. Only Kind is compared, see (*Error).Is.
var (
	ErrInvalidCriteria = &Error{Kind: KindInvalidCriteria}
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrDatabase        = &Error{Kind: KindDatabase}
)

// codeFor derives the default machine code from a kind:
// "invalid_criteria" -> "INVALID_CRITERIA".
func codeFor(kind Kind) string {
	return MakeUpperCaseWithUnderscores(string(kind))
}

// NewInvalidCriteriaError reports search criteria that cannot be turned into a query.
//
// fields lists every offending criterion so a caller can show all of them at once.
func NewInvalidCriteriaError(message string, fields []FieldError) *Error {
	return &Error{
		Kind:    KindInvalidCriteria,
		Code:    codeFor(KindInvalidCriteria),
		Message: message,
		Errors:  fields,
	}
}

// NewInvalidInputError reports a rejected insert payload.
//
// Parameters:
//   - message: text for the caller
//   - code: optional custom code (if nil, defaults to "INVALID_INPUT")
//   - fields: optional field errors
//   - cause: optional underlying error (e.g. a constraint violation)
func NewInvalidInputError(message string, code *string, fields []FieldError, cause error) *Error {
	formattedCode := codeFor(KindInvalidInput)
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:    KindInvalidInput,
		Code:    formattedCode,
		Message: message,
		Errors:  fields,
		err:     cause,
	}
}

// NewNotFoundError reports a lookup that matched no row.
//
// Supports optional custom code override similar to NewInvalidInputError.
func NewNotFoundError(message string, code *string) *Error {
	formattedCode := codeFor(KindNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:    KindNotFound,
		Code:    formattedCode,
		Message: message,
	}
}

// NewDatabaseError wraps an executor failure.
//
// The cause is kept for Unwrap so logs and errors.As still see the driver error.
func NewDatabaseError(message string, cause error) *Error {
	return &Error{
		Kind:    KindDatabase,
		Code:    codeFor(KindDatabase),
		Message: message,
		err:     cause,
	}
}

// ValidationError converts a list of field errors into an invalid-criteria error.
func ValidationError(fields []FieldError) *Error {
	return NewInvalidCriteriaError("Validation failed", fields)
}
