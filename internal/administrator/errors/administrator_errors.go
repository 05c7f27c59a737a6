package administratorerrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrAdministratorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Administrator not found",
		http.StatusNotFound,
	)

	ErrStartupAlreadyHasAdministrator = apperror.New(
		apperror.CodeConflict,
		"This startup already has an administrator",
		http.StatusConflict,
	)

	ErrUserAlreadyBound = apperror.New(
		apperror.CodeConflict,
		"This user already administers a startup",
		http.StatusConflict,
	)

	ErrReferenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Startup or user not found",
		http.StatusNotFound,
	)

	ErrInvalidStartupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid startup ID",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
