package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/deppfellow/lightbnb/internal/errs"
)

// Exit codes returned by cmd/lightbnb.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInvalid  = 2
	ExitNotFound = 3
)

// ReportError writes err to w and returns the process exit code for it.
// Module errors are written as JSON so scripts can read the field errors.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return ExitFailure
	}

	if encErr := writeJSON(w, appErr); encErr != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	}

	switch appErr.Kind {
	case errs.KindInvalidCriteria, errs.KindInvalidInput:
		return ExitInvalid
	case errs.KindNotFound:
		return ExitNotFound
	default:
		return ExitFailure
	}
}
