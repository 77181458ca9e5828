package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"sheetregistry/internal/domain"
)

func TestHTTPStatusFromDomainError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"auth", domain.ErrAuth("nope"), http.StatusUnauthorized},
		{"not found", domain.ErrNotFound("record 9 not found"), http.StatusNotFound},
		{"validation", domain.ErrValidation("fullName is required"), http.StatusBadRequest},
		{"unavailable", domain.ErrUnavailable(errors.New("timeout"), "read range"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, httpStatusFromDomainError(tt.err))
		})
	}
}
