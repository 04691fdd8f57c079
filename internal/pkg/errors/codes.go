package errors

import "net/http"

var (
	ErrStoreNotConfigured = New(
		"STORE_NOT_CONFIGURED",
		"DATABASE_URL is not set. Add it to your environment to use the places admin.",
		http.StatusServiceUnavailable,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Submitted form values are invalid",
		http.StatusUnprocessableEntity,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrDuplicatePlace = New(
		"DUPLICATE_PLACE",
		"A place with the same slug or Google Place ID already exists",
		http.StatusConflict,
	)

	ErrInvalidPlaceID = New(
		"INVALID_PLACE_ID",
		"Invalid place ID",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
