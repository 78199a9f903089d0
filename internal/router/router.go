// Package router builds the echo instance: middleware order, error
// handler and route registration.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/handler"
	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/server"
	"github.com/deppfellow/go-signup/internal/service"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// RequestID before the New Relic and context middleware that read it;
	// RequestLogger after ContextEnhancer so it logs with the request logger.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	router.POST("/signup", handler.Handle(
		h.Auth.Handler,
		h.Auth.Signup,
		http.StatusCreated,
		&service.SignupRequest{},
	))

	return router
}
