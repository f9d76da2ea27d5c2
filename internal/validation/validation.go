// Package validation contains the logic for validating
// search criteria and insert payloads.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into errs.FieldError lists the
// caller can understand.
package validation
