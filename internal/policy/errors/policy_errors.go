package policyerrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to change this resource",
		http.StatusForbidden,
	)
)
