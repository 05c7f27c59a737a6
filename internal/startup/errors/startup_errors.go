package startuperrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrStartupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Startup not found",
		http.StatusNotFound,
	)

	ErrInvalidStartupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid startup ID",
		http.StatusBadRequest,
	)

	ErrInvalidFoundedYear = apperror.ValidationFailed("Founded year cannot be in the future")
)
