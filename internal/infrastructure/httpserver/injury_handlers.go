package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/matchpulse/futsal-dashboard/internal/application/aggregate"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
)

func (s *Server) listInjuries(c echo.Context) error {
	records, err := s.injuries.GetInjuries(c.Request().Context())
	if err != nil {
		return s.degraded(c, err)
	}

	filtered := injury.Filter(records,
		c.QueryParam("player"),
		injury.Type(c.QueryParam("type")),
		parseDay(c.QueryParam("from")),
		parseDay(c.QueryParam("to")),
	)
	return c.JSON(http.StatusOK, apiResponse{Data: filtered, Synthetic: injury.AnySynthetic(filtered)})
}

func (s *Server) getInjuryRollup(c echo.Context) error {
	records, err := s.injuries.GetInjuries(c.Request().Context())
	if err != nil {
		return s.degraded(c, err)
	}

	byMonth := c.QueryParam("by_month") != "false"
	rollup := aggregate.InjuryRollup(records, byMonth)
	return c.JSON(http.StatusOK, apiResponse{Data: rollup, Synthetic: injury.AnySynthetic(records)})
}
