package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/server"
	"github.com/deppfellow/go-signup/internal/service"
)

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

// Signup registers a new user. Mounted on POST /signup with status 201.
func (h *AuthHandler) Signup(c echo.Context, req *service.SignupRequest) (*service.SignupResponse, error) {
	return h.authService.Signup(c.Request().Context(), req)
}
