package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// serviceVersion is overridden at build time via
// -ldflags "-X .../httpserver.serviceVersion=<tag>".
var serviceVersion = "dev"

const healthCheckTimeout = 2 * time.Second

type dependencyHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

type healthReport struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Version      string                      `json:"version"`
	CheckedAt    string                      `json:"checked_at"`
	Dependencies map[string]dependencyHealth `json:"dependencies"`
}

// healthCheck fans out to the registered dependency checkers. Any failing
// dependency marks the service degraded and the endpoint answers 503, which
// is what load balancers key on.
func (s *Server) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	report := healthReport{
		Status:       "healthy",
		Service:      "futsal-dashboard",
		Version:      serviceVersion,
		CheckedAt:    time.Now().UTC().Format(time.RFC3339),
		Dependencies: make(map[string]dependencyHealth, len(s.healthCheckers)),
	}

	for _, hc := range s.healthCheckers {
		if hc == nil {
			continue
		}
		start := time.Now()
		status := "healthy"
		if err := hc.Check(ctx); err != nil {
			status = "unhealthy"
			report.Status = "degraded"
		}
		report.Dependencies[hc.Name()] = dependencyHealth{
			Status:    status,
			LatencyMS: time.Since(start).Milliseconds(),
		}
	}

	code := http.StatusOK
	if report.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, report)
}
