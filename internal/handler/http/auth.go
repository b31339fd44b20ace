package http

import (
	"encoding/json"
	"net/http"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/auth"
	"github.com/pulsehr/pulsehr-backend-go/internal/handler/http/response"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	// Login handles password login and issues the token pair
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login handles POST /auth/login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshExpiresAt))
	response.SuccessWithMessage(w, "Login successful", result)
}
