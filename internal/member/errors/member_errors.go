package membererrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"Member not found",
		http.StatusNotFound,
	)

	ErrStartupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Startup not found",
		http.StatusNotFound,
	)

	ErrInvalidMemberID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid member ID",
		http.StatusBadRequest,
	)

	ErrInvalidStartupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid startup ID",
		http.StatusBadRequest,
	)
)
