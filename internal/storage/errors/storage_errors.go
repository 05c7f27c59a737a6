package storageerrors

import (
	"go-inova/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"File is required",
		http.StatusBadRequest,
	)

	ErrImageTooLarge = apperror.New(
		apperror.CodeValidation,
		"Image exceeds the 5MB limit",
		http.StatusUnprocessableEntity,
	)

	ErrImageDimensionsTooLarge = apperror.New(
		apperror.CodeValidation,
		"Image dimensions are too large",
		http.StatusUnprocessableEntity,
	)

	ErrUnsupportedImage = apperror.New(
		apperror.CodeValidation,
		"Only JPEG and PNG images are accepted",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidAssetKind = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid asset kind",
		http.StatusBadRequest,
	)

	ErrUploadFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Asset storage is unavailable",
		http.StatusServiceUnavailable,
	)
)
