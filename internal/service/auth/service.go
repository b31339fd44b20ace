package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/auth"
	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	profiles   profile.ProfileRepository
	jwtService jwt.Service
}

func NewAuthService(profiles profile.ProfileRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		profiles:   profiles,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access/refresh token pair. A
// missing profile and a wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	caller, err := s.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(caller.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(caller.ID, caller.Email, caller.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(caller.ID)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken:      accessToken,
		ExpiresAt:        expiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		UserID:           caller.ID,
		FullName:         caller.FullName,
		Role:             string(caller.Role),
	}, nil
}
