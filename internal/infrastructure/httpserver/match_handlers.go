package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/matchpulse/futsal-dashboard/internal/application/aggregate"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
)

// listMatches returns the sorted calendar, narrowed by the team/date filters.
func (s *Server) listMatches(c echo.Context) error {
	matches, err := s.matchData.GetMatches(c.Request().Context())
	if err != nil {
		return s.degraded(c, err)
	}

	filtered := match.Filter(matches,
		c.QueryParam("team"),
		parseDay(c.QueryParam("from")),
		parseDay(c.QueryParam("to")),
	)
	return c.JSON(http.StatusOK, apiResponse{Data: filtered})
}

// getMatchTimeline returns the attacking-event table rows of one match,
// optionally narrowed to one side via ?team=<team id>.
func (s *Server) getMatchTimeline(c echo.Context) error {
	timeline, err := s.matchData.GetMatchTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.degraded(c, err)
	}

	if team := c.QueryParam("team"); team != "" {
		timeline.Events = aggregate.FilterEventsByTeam(timeline.Events, team)
		rows := make([]match.TimelineRow, 0, len(timeline.Rows))
		for _, r := range timeline.Rows {
			if r.TeamID == team {
				rows = append(rows, r)
			}
		}
		timeline.Rows = rows
	}
	return c.JSON(http.StatusOK, apiResponse{Data: timeline})
}

// minuteChart is the payload behind the per-minute histogram: the buckets
// plus the color each team should render with.
type minuteChart struct {
	Match   match.Record              `json:"match"`
	Buckets []aggregate.MinuteBucket  `json:"buckets"`
	Teams   map[string]chartTeamEntry `json:"teams"`
}

type chartTeamEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) getMatchMinuteChart(c echo.Context) error {
	timeline, err := s.matchData.GetMatchTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.degraded(c, err)
	}

	bucketSize, _ := strconv.Atoi(c.QueryParam("bucket"))
	byTeam := c.QueryParam("by_team") != "false"
	events := aggregate.FilterEventsByTeam(timeline.Events, c.QueryParam("team"))

	row := timeline.Match
	homeColor, awayColor := s.colors.Pick(row.HomeName, row.AwayName)

	payload := minuteChart{
		Match:   row,
		Buckets: aggregate.EventsPerMinute(events, bucketSize, byTeam),
		Teams: map[string]chartTeamEntry{
			row.HomeID: {Name: row.HomeName, Color: homeColor},
			row.AwayID: {Name: row.AwayName, Color: awayColor},
		},
	}
	return c.JSON(http.StatusOK, apiResponse{Data: payload})
}

func (s *Server) getMatchTypeChart(c echo.Context) error {
	timeline, err := s.matchData.GetMatchTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.degraded(c, err)
	}
	events := aggregate.FilterEventsByTeam(timeline.Events, c.QueryParam("team"))
	return c.JSON(http.StatusOK, apiResponse{Data: aggregate.EventTypeDistribution(events)})
}

func (s *Server) getSquad(c echo.Context) error {
	records, err := s.matchData.GetSquads(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.degraded(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: records})
}
