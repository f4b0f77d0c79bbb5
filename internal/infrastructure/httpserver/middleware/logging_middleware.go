package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware emits one structured line per request, keyed by the
// request id the server installs, so a degraded dashboard response can be
// correlated with the upstream fetch that caused it.
type LoggingMiddleware struct {
	logger *logrus.Logger
}

func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

func (m *LoggingMiddleware) RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if m.logger == nil {
				return err
			}

			fields := logrus.Fields{
				"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
				"method":      c.Request().Method,
				"route":       c.Path(),
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			// Surface the match or team identifier the route operates on.
			if id := c.Param("id"); id != "" {
				fields["resource_id"] = id
			}
			if team := c.QueryParam("team"); team != "" {
				fields["team_filter"] = team
			}
			m.logger.WithFields(fields).Info("request completed")
			return err
		}
	}
}
