package response

import (
	"errors"
	"net/http"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/auth"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/dashboard"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Dashboard pipeline errors
	case errors.Is(err, dashboard.ErrUnauthorized):
		Unauthorized(w, "Unauthorized")
	case errors.Is(err, dashboard.ErrAccessDenied):
		Forbidden(w, "Access denied")
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, dashboard.ErrFetchFailed):
		FetchFailed(w, "Failed to fetch dashboard data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
