// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/taibuivan/consumo/internal/platform/apperr"
)

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, Wrap(nil, "noop"))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := Wrap(pgx.ErrNoRows, "get_product")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		err := Wrap(&pgconn.PgError{Code: codeUniqueViolation}, "create_forum")
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("foreign key violation maps to validation error", func(t *testing.T) {
		err := Wrap(&pgconn.PgError{Code: codeForeignKeyViolation}, "create_blog")

		appErr := &apperr.AppError{}
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		err := Wrap(errors.New("connection reset"), "list_blogs")

		appErr := &apperr.AppError{}
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	})
}

func TestWrapParent(t *testing.T) {
	t.Run("foreign key violation maps to not found", func(t *testing.T) {
		err := WrapParent(&pgconn.PgError{Code: codeForeignKeyViolation}, "create_blog_comment")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other errors fall back to Wrap", func(t *testing.T) {
		require.NoError(t, WrapParent(nil, "noop"))
		require.ErrorIs(t, WrapParent(&pgconn.PgError{Code: codeUniqueViolation}, "create_forum"), ErrDuplicate)
	})
}
