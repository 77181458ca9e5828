package api

import (
	"errors"
	"net/http"

	"sheetregistry/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
// Backend failures and anything unrecognized map to 500.
func httpStatusFromDomainError(err error) int {
	var auth *domain.AuthError
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &auth):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
