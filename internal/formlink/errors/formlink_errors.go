package formlinkerrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrFormLinkNotFound = apperror.New(
		apperror.CodeNotFound,
		"No form link has been published yet",
		http.StatusNotFound,
	)

	ErrInvalidURL = apperror.New(
		apperror.CodeValidation,
		"Form link must be an absolute http or https URL",
		http.StatusUnprocessableEntity,
	)
)
