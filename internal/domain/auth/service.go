package auth

import "context"

// AuthService issues sessions for the dashboard endpoints
type AuthService interface {
	// Login verifies the credentials against the profile row and returns an
	// access/refresh token pair.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
