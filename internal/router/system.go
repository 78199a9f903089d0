package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/handler"
)

// registerSystemRoutes mounts the endpoints that are not business logic:
// health, docs UI and the static assets it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
