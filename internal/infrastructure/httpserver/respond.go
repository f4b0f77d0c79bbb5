package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
)

// apiResponse is the envelope consumed by the dashboard UI. Warning carries
// the banner text for degraded responses; Synthetic flags fallback datasets.
type apiResponse struct {
	Data      interface{} `json:"data"`
	Warning   string      `json:"warning,omitempty"`
	Synthetic bool        `json:"synthetic,omitempty"`
}

// degraded maps the error taxonomy onto the empty-result-plus-warning
// boundary: unknown identifiers become a plain "no data" state, upstream and
// parse failures add a warning banner. Nothing here crashes the dashboard.
func (s *Server) degraded(c echo.Context, err error) error {
	empty := []interface{}{}
	if ports.IsNotFound(err) {
		return c.JSON(http.StatusOK, apiResponse{Data: empty})
	}
	if s.logger != nil {
		s.logger.WithError(err).Warn("request degraded to empty result")
	}
	warning := "Upstream data is currently unavailable."
	if !ports.IsUpstreamFailure(err) {
		warning = "Data could not be loaded."
	}
	return c.JSON(http.StatusOK, apiResponse{Data: empty, Warning: warning})
}

const dayLayout = "2006-01-02"

// parseDay reads a YYYY-MM-DD query value; empty or malformed means no filter.
func parseDay(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
