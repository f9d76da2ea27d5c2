// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into user-friendly errs.Error values (e.g., converting
// a "unique violation" on users.email into an invalid-input error
// that says the email is taken).
package sqlerr
