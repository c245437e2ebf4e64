package api

import (
	"errors"
	"net/http"

	"posts-api/internal/service/auth"
	"posts-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This keeps
// internal error types out of client responses.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingSubject),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrBadCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicateID),
		errors.Is(err, store.ErrUserReferenced):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the given
// error. Handlers that know the entity id use the specific not-found wording
// instead; this covers everything else.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingSubject),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrBadCredentials):
		return "Could not validate credentials"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrDuplicateID):
		return "duplicate id, choose another"

	case errors.Is(err, store.ErrUserReferenced):
		return "user is still referenced by existing posts"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
