package newserrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrNewsNotFound = apperror.New(
		apperror.CodeNotFound,
		"News not found",
		http.StatusNotFound,
	)

	ErrInvalidNewsID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid news ID",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = apperror.New(
		apperror.CodeValidation,
		"Invalid news category",
		http.StatusUnprocessableEntity,
	)
)
