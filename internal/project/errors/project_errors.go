package projecterrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrStartupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Startup not found",
		http.StatusNotFound,
	)

	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)

	ErrInvalidStartupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid startup ID",
		http.StatusBadRequest,
	)

	ErrInvalidMemberID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid member ID",
		http.StatusBadRequest,
	)

	ErrStartupHasNoAdministrator = apperror.ValidationFailed("startup has no administrator")

	ErrInvalidPhotoCount = apperror.ValidationFailed("A project needs between 2 and 5 photos")

	ErrMemberNotInStartup = apperror.ValidationFailed("Every project member must belong to the same startup")
)
