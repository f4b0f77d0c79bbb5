package fifa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/squad"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

const calendarCount = 500

// Config carries the upstream endpoint settings.
type Config struct {
	BaseURL       string
	Language      string
	CompetitionID string
	SeasonID      string
	StageID       string
	Timeout       time.Duration
	UserAgent     string
}

// Client talks to the FIFA data API. It is a pure request/response mapper:
// no retries, no local state.
type Client struct {
	httpClient *http.Client
	cfg        Config
	logger     *logrus.Logger
}

func NewClient(cfg Config, logger *logrus.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

// FetchCalendar returns the matches of a season, optionally narrowed to one
// stage.
func (c *Client) FetchCalendar(ctx context.Context, seasonID, stageID string) ([]match.Record, error) {
	if seasonID == "" {
		return nil, &ports.NotFoundError{Resource: "season", ID: seasonID}
	}
	params := url.Values{}
	params.Set("idSeason", seasonID)
	params.Set("count", strconv.Itoa(calendarCount))
	if stageID != "" {
		params.Set("idStage", stageID)
	}

	var payload calendarResponse
	if err := c.getJSON(ctx, "calendar", "/calendar/matches", params, &payload); err != nil {
		return nil, err
	}

	out := make([]match.Record, 0, len(payload.Results))
	for _, m := range payload.Results {
		rec := match.Record{
			MatchID:   m.IdMatch.String(),
			StageName: m.StageName.first(),
			GroupName: m.GroupName.first(),
			Kickoff:   parseKickoff(m.LocalDate, m.Date),
		}
		if m.Home != nil {
			rec.HomeID = m.Home.IdTeam.String()
			rec.HomeName = m.Home.name()
		}
		if m.Away != nil {
			rec.AwayID = m.Away.IdTeam.String()
			rec.AwayName = m.Away.name()
		}
		rec.MatchName = rec.HomeName + " vs " + rec.AwayName
		out = append(out, rec)
	}
	return out, nil
}

// FetchEvents returns the timeline of one match.
func (c *Client) FetchEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	if matchID == "" {
		return nil, &ports.NotFoundError{Resource: "match", ID: matchID}
	}
	path := fmt.Sprintf("/timelines/%s/%s/%s/%s", c.cfg.CompetitionID, c.cfg.SeasonID, c.cfg.StageID, matchID)

	var payload timelineResponse
	if err := c.getJSON(ctx, "events", path, nil, &payload); err != nil {
		return nil, err
	}

	out := make([]match.Event, 0, len(payload.Event))
	for _, e := range payload.Event {
		desc := e.TypeLocalized.first()
		out = append(out, match.Event{
			MatchID:     matchID,
			TeamID:      e.IdTeam.String(),
			PlayerID:    e.IdPlayer.String(),
			Type:        match.ParseEventType(desc),
			Description: desc,
			MatchMinute: e.MatchMinute,
			Minute:      match.ParseMinute(e.MatchMinute),
		})
	}
	return out, nil
}

// FetchSquad returns the players of one team.
func (c *Client) FetchSquad(ctx context.Context, teamID string) ([]squad.Record, error) {
	if teamID == "" {
		return nil, &ports.NotFoundError{Resource: "team", ID: teamID}
	}
	params := url.Values{}
	params.Set("idCompetition", c.cfg.CompetitionID)
	params.Set("idSeason", c.cfg.SeasonID)

	var payload squadResponse
	if err := c.getJSON(ctx, "squad", "/teams/"+teamID+"/squad", params, &payload); err != nil {
		return nil, err
	}

	out := make([]squad.Record, 0, len(payload.Players))
	for _, p := range payload.Players {
		out = append(out, squad.Record{
			TeamID:     p.IdTeam.String(),
			PlayerID:   p.IdPlayer.String(),
			PlayerName: p.ShortName.first(),
			Position:   p.PositionLocalized.first(),
		})
	}
	return out, nil
}

// Ping checks that the upstream host is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.cfg.BaseURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Any HTTP response means the host is reachable; the root path may 404.
	return nil
}

// getJSON issues one GET against the API and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("language", c.cfg.Language)

	full := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/") + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return &ports.UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return &ports.UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusNotFound {
		return &ports.NotFoundError{Resource: endpoint, ID: path}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"endpoint": endpoint, "status": resp.StatusCode}).Warn("upstream request failed")
		}
		return &ports.UpstreamError{Endpoint: endpoint, Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &ports.ParseError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func parseKickoff(localDate, date string) time.Time {
	raw := localDate
	if raw == "" {
		raw = date
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
