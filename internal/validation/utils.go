package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/go-playground/validator/v10"
)

// validate is shared: validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name ("minimum_rating") rather than the
	// Go field name ("MinimumRating").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validatable is implemented by types that know how to validate themselves.
//
// Typical pattern:
//   - Define a struct with validator tags (`validate:"omitnil,gt=0"`)
//   - Implement Validate() error that runs Struct(v) and then any custom checks
//   - Return validator.ValidationErrors or CustomValidationErrors
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// Struct runs the tag-based rules on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// Criteria validates search criteria, returning an errs.KindInvalidCriteria
// error listing every offending field.
func Criteria(v Validatable) error {
	if msg, fieldErrors := validateStruct(v); fieldErrors != nil {
		return errs.NewInvalidCriteriaError(msg, fieldErrors)
	}
	return nil
}

// Input validates an insert payload, returning an errs.KindInvalidInput error.
func Input(v Validatable) error {
	if msg, fieldErrors := validateStruct(v); fieldErrors != nil {
		return errs.NewInvalidInputError(msg, nil, fieldErrors, nil)
	}
	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Neither kind: surface the message as a single anonymous field error
		// rather than dropping it.
		return "Validation failed", []errs.FieldError{{Error: err.Error()}}
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: tagMessage(err),
		})
	}

	return "Validation failed", fieldErrors
}

// TagProblems converts the validator.ValidationErrors inside err into
// CustomValidationErrors, so a Validate method can report tag failures
// together with its own checks. ok is false when err holds no tag failures.
func TagProblems(err error) (problems CustomValidationErrors, ok bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	for _, fe := range validationErrors {
		problems = append(problems, CustomValidationError{
			Field:   fe.Field(),
			Message: tagMessage(fe),
		})
	}
	return problems, true
}

// tagMessage renders one failed tag rule as text.
func tagMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min", "gte":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max", "lte":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}
