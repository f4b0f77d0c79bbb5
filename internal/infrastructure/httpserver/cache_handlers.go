package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// clearCache resets the cache store on demand; the next filter interaction
// refetches everything from upstream.
func (s *Server) clearCache(c echo.Context) error {
	if s.cache == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "no cache configured"})
	}
	if err := s.cache.Clear(c.Request().Context()); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("failed to clear cache")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to clear cache"})
	}
	if s.logger != nil {
		s.logger.Info("cache cleared")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
