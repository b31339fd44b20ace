package auth

import "github.com/pulsehr/pulsehr-backend-go/internal/pkg/validator"

// LoginRequest represents a password login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email format is invalid"})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResponse carries the issued token pair and caller display fields
type LoginResponse struct {
	AccessToken      string  `json:"access_token"`
	ExpiresAt        int64   `json:"expires_at"`
	RefreshToken     string  `json:"-"` // delivered as an HttpOnly cookie
	RefreshExpiresAt int64   `json:"-"`
	UserID           string  `json:"user_id"`
	FullName         *string `json:"full_name"`
	Role             string  `json:"role"`
}
