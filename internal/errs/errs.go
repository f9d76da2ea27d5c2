// Package errs defines the error types returned by the data-access layer.
//
// Every failure that leaves a repository or the query builder is an *Error
// carrying a Kind, so callers can branch on what went wrong
// (bad search criteria, missing row, database failure) with errors.Is
// instead of matching strings.
package errs
