package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/server"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthCheck probes one dependency. A failing Required check turns the
// whole response into a 503; other failures are only reported.
type HealthCheck struct {
	Name     string
	Required bool
	Ping     func(ctx context.Context) error
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type HealthHandler struct {
	Handler
	checks []HealthCheck
}

// NewHealthHandler builds the checks listed in observability.health_checks:
// "database" (required) and "redis".
func NewHealthHandler(s *server.Server) *HealthHandler {
	var checks []HealthCheck

	if hc := s.Config.Observability.HealthChecks; hc.Enabled {
		for _, name := range hc.Checks {
			switch name {
			case "database":
				if s.DB != nil {
					checks = append(checks, HealthCheck{Name: name, Required: true, Ping: s.DB.Ping})
				}
			case "redis":
				if s.Redis != nil {
					checks = append(checks, HealthCheck{Name: name, Ping: func(ctx context.Context) error {
						return s.Redis.Ping(ctx).Err()
					}})
				}
			}
		}
	}

	return NewHealthHandlerWithChecks(s, checks...)
}

func NewHealthHandlerWithChecks(s *server.Server, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
	}
}

// CheckHealth answers 200 when every required check passes, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult, len(h.checks)),
	}

	for _, check := range h.checks {
		result := h.run(c.Request().Context(), check)
		response.Checks[check.Name] = result

		if result.Status == statusHealthy {
			logger.Debug().Str("check", check.Name).Str("response_time", result.ResponseTime).Msg("health check passed")
			continue
		}

		logger.Error().
			Str("check", check.Name).
			Bool("required", check.Required).
			Str("response_time", result.ResponseTime).
			Str("error", result.Error).
			Msg("health check failed")

		h.recordFailure(check.Name, result)

		if check.Required {
			response.Status = statusUnhealthy
		}
	}

	if response.Status != statusHealthy {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) run(parent context.Context, check HealthCheck) CheckResult {
	ctx, cancel := context.WithTimeout(parent, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := check.Ping(ctx)
	result := CheckResult{
		Status:       statusHealthy,
		ResponseTime: time.Since(start).String(),
	}
	if err != nil {
		result.Status = statusUnhealthy
		result.Error = err.Error()
	}
	return result
}

func (h *HealthHandler) recordFailure(name string, result CheckResult) {
	nrApp := h.server.LoggerService.GetApplication()
	if nrApp == nil {
		return
	}

	nrApp.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":    name,
		"operation":     "health_check",
		"error_type":    name + "_unhealthy",
		"response_time": result.ResponseTime,
		"error_message": result.Error,
	})
}
