package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/shoplist/internal/errs"
)

func notNullErr() *pgconn.PgError {
	return &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    `null value in column "name" of relation "shopping_list" violates not-null constraint`,
		TableName:  "shopping_list",
		ColumnName: "name",
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: None},
		{name: "not null", err: notNullErr(), want: NotNull},
		{
			name: "wrapped not null",
			err:  fmt.Errorf("insert item: %w", notNullErr()),
			want: NotNull,
		},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: Unique},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: ForeignKey},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: Check},
		{name: "admin shutdown class 08", err: &pgconn.PgError{Code: "08006"}, want: Connection},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: Connection},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: Unknown},
		{name: "plain error", err: errors.New("boom"), want: Unknown},
		{
			name: "converted error",
			err:  ConvertPgError(&pgconn.PgError{Code: "23505"}),
			want: Unique,
		},
		{
			// Message text mentioning not-null must not influence the kind.
			name: "message only",
			err:  errors.New("violates not-null constraint"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsNotNullViolation(notNullErr()))
	assert.False(t, IsUniqueViolation(notNullErr()))
	assert.True(t, IsConnectionError(context.DeadlineExceeded))
	assert.Equal(t, "not_null_violation", NotNull.String())
	assert.Equal(t, "connection_error", Connection.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestMapCodeAndSeverity(t *testing.T) {
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, ConnectionFailure, MapCode("08001"))
	assert.Equal(t, Other, MapCode("XX000"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("something"))
}

func TestConvertPgError(t *testing.T) {
	src := notNullErr()
	converted := ConvertPgError(src)

	assert.Equal(t, NotNullViolation, converted.Code)
	assert.Equal(t, "name", converted.ColumnName)
	assert.Equal(t, NotNullViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("x")))

	var unwrapped *pgconn.PgError
	require.True(t, errors.As(converted, &unwrapped))
	assert.Same(t, src, unwrapped)
}

func TestHandleError(t *testing.T) {
	t.Run("not null becomes field error", func(t *testing.T) {
		err := HandleError(fmt.Errorf("insert: %w", notNullErr()))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "SHOPPING_ITEM_REQUIRED", httpErr.Code)
		assert.Equal(t, "The Name is required", httpErr.Message)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "name", httpErr.Errors[0].Field)
	})

	t.Run("unique names column", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{
			Code:           "23505",
			TableName:      "shopping_list",
			ConstraintName: "shopping_list_name_key",
		})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "SHOPPING_ITEM_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A Shopping Item with this Name already exists", httpErr.Message)
	})

	t.Run("no rows", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(pgx.ErrNoRows), &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("connection", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(context.DeadlineExceeded), &httpErr))
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	})

	t.Run("passthrough", func(t *testing.T) {
		original := errs.NewForbiddenError("nope", false)
		assert.Same(t, original, HandleError(original))
	})

	t.Run("unknown", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(errors.New("boom")), &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("shopping_list_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk_thing"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
