// Package handler is the HTTP layer: it binds and validates requests,
// calls the service layer and writes responses.
package handler

import (
	"github.com/deppfellow/go-signup/internal/server"
	"github.com/deppfellow/go-signup/internal/service"
)

type Handlers struct {
	Auth    *AuthHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(s, services.Auth),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
