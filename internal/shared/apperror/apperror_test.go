package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-inova/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAppError_WithErrKeepsIdentity(t *testing.T) {
	cause := errors.New("boom")
	wrapped := apperror.ErrNotFound.WithErr(cause)

	assert.True(t, errors.Is(wrapped, apperror.ErrNotFound))
	assert.True(t, errors.Is(wrapped, cause))
	assert.False(t, errors.Is(wrapped, apperror.ErrForbidden))
	assert.Equal(t, "Resource not found: boom", wrapped.Error())
}

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ValidationFailed("photos must be between 2 and 5"))
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, apperror.CodeValidation, httpErr.Code)
	})

	t.Run("plain error is hidden", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})
}

func TestMapValidationError(t *testing.T) {
	type req struct {
		PublishedAt string `validate:"required"`
		Link        string `validate:"url"`
	}
	v := validator.New()

	err := v.Struct(req{Link: "https://example.com"})
	mapped := apperror.MapValidationError(err)
	assert.Equal(t, "Publishedat is required", mapped.(*apperror.AppError).Message)

	err = v.Struct(req{PublishedAt: "x", Link: "not a url"})
	mapped = apperror.MapValidationError(err)
	assert.Equal(t, "Link is invalid", mapped.(*apperror.AppError).Message)

	mapped = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, apperror.CodeInvalidInput, mapped.(*apperror.AppError).Code)
}
