package sqlerr

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorConstraintViolations(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantKind    errs.Kind
		wantCode    string
		wantMessage string
	}{
		{
			name: "unique email on users",
			pgErr: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      "users",
				ConstraintName: "users_email_key",
			},
			wantKind:    errs.KindInvalidInput,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "A User with this email already exists",
		},
		{
			name: "missing owner on properties",
			pgErr: &pgconn.PgError{
				Code:       "23503",
				TableName:  "properties",
				ColumnName: "owner_id",
			},
			wantKind:    errs.KindInvalidInput,
			wantCode:    "PROPERTY_NOT_FOUND",
			wantMessage: "The referenced Owner does not exist",
		},
		{
			name: "null title",
			pgErr: &pgconn.PgError{
				Code:       "23502",
				TableName:  "properties",
				ColumnName: "title",
			},
			wantKind:    errs.KindInvalidInput,
			wantCode:    "PROPERTY_REQUIRED",
			wantMessage: "The Title is required",
		},
		{
			name: "check on cost",
			pgErr: &pgconn.PgError{
				Code:       "23514",
				TableName:  "properties",
				ColumnName: "cost_per_night",
			},
			wantKind:    errs.KindInvalidInput,
			wantCode:    "PROPERTY_INVALID",
			wantMessage: "The Cost Per Night value does not meet required conditions",
		},
		{
			name:        "undefined column",
			pgErr:       &pgconn.PgError{Code: "42703", TableName: "properties"},
			wantKind:    errs.KindDatabase,
			wantCode:    "DATABASE",
			wantMessage: "An error occurred while processing your request",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := HandleError(test.pgErr)

			var appErr *errs.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, test.wantKind, appErr.Kind)
			assert.Equal(t, test.wantCode, appErr.Code)
			assert.Equal(t, test.wantMessage, appErr.Message)

			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr), "driver error stays reachable")
		})
	}
}

func TestHandleErrorNotNullFieldErrors(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "Email"})

	var appErr *errs.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []errs.FieldError{{Field: "email", Error: "is required"}}, appErr.Errors)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(WithTable("users", pgx.ErrNoRows))
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.Equal(t, "User not found", err.Error())

	err = HandleError(WithTable("properties", pgx.ErrNoRows))
	assert.Equal(t, "Property not found", err.Error())

	err = HandleError(pgx.ErrNoRows)
	assert.Equal(t, "Resource not found", err.Error())
}

func TestHandleErrorPassThrough(t *testing.T) {
	assert.NoError(t, HandleError(nil))

	original := errs.NewNotFoundError("User not found", nil)
	assert.Same(t, original, HandleError(original))

	err := HandleError(context.DeadlineExceeded)
	assert.True(t, errors.Is(err, errs.ErrDatabase))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWithTableKeepsMessages(t *testing.T) {
	assert.NoError(t, WithTable("users", nil))

	tagged := WithTable("properties", context.Canceled)
	assert.Equal(t, context.Canceled.Error(), tagged.Error())
	assert.True(t, errors.Is(tagged, context.Canceled))

	err := HandleError(tagged)
	assert.True(t, errors.Is(err, errs.ErrDatabase))
	assert.Equal(t, "An error occurred while processing your request: context canceled", err.Error())
	assert.NotContains(t, err.Error(), "properties")

	pgErr := &pgconn.PgError{Code: "23503", TableName: "properties", ColumnName: "owner_id"}
	var appErr *errs.Error
	require.True(t, errors.As(HandleError(WithTable("properties", pgErr)), &appErr))
	assert.Equal(t, errs.KindInvalidInput, appErr.Kind)
	assert.Equal(t, "The referenced Owner does not exist", appErr.Message)
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, UniqueViolation, ErrCode(HandleError(&pgconn.PgError{Code: "23505"})))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("weird"))
}
