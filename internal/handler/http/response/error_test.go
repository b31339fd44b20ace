package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/auth"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", dashboard.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"access denied", dashboard.ErrAccessDenied, http.StatusForbidden, "FORBIDDEN"},
		{"profile not found", profile.ErrProfileNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"fetch failed", dashboard.ErrFetchFailed, http.StatusInternalServerError, "FETCH_FAILED"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorUnwrapsFetchFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("%w: %w", dashboard.ErrFetchFailed, errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FETCH_FAILED", resp.Error.Code)
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "email", Message: "Email is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "Email is required", resp.Error.Details["email"])
}
