package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := NewNotFoundError("User not found", nil)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrDatabase))

	wrapped := fmt.Errorf("get user: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestDatabaseErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("failed to search properties", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrDatabase))
	assert.Equal(t, "failed to search properties: connection refused", err.Error())
	assert.Equal(t, "DATABASE", err.Code)
}

func TestInvalidInputErrorCustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	err := NewInvalidInputError("A user with this email already exists", &code, nil, nil)

	assert.Equal(t, code, err.Code)
	assert.Equal(t, KindInvalidInput, err.Kind)

	defaulted := NewInvalidInputError("bad", nil, nil, nil)
	assert.Equal(t, "INVALID_INPUT", defaulted.Code)
}

func TestWithMessageCopies(t *testing.T) {
	base := ValidationError([]FieldError{{Field: "city", Error: "must not be blank"}})
	changed := base.WithMessage("Invalid search")

	assert.Equal(t, "Validation failed", base.Message)
	assert.Equal(t, "Invalid search", changed.Message)
	assert.Equal(t, base.Errors, changed.Errors)
	assert.True(t, errors.Is(changed, ErrInvalidCriteria))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("not found"))
	assert.Equal(t, "INVALID_CRITERIA", MakeUpperCaseWithUnderscores("invalid_criteria"))
}
