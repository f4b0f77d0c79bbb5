package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/teamcolor"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/cache"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/httpserver"
	"github.com/matchpulse/futsal-dashboard/internal/utils"
	"github.com/matchpulse/futsal-dashboard/test/mocks"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "change-me-please"
)

func newTestServer(t *testing.T, deps httpserver.ServerDeps) *httpserver.Server {
	t.Helper()

	hash, err := utils.HashPassword(testAdminPassword)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &httpserver.ServerConfig{Host: "127.0.0.1", Port: "0"}
	return httpserver.NewServer(cfg, testAdminUser, hash, logger, deps)
}

func doRequest(srv *httpserver.Server, method, target string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if auth {
		req.SetBasicAuth(testAdminUser, testAdminPassword)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	Warning   string          `json:"warning"`
	Synthetic bool            `json:"synthetic"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAPIRequiresBasicAuth(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{},
		Injuries:  &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	req.SetBasicAuth(testAdminUser, "wrong-password")
	wrong := httptest.NewRecorder()
	srv.Echo().ServeHTTP(wrong, req)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)

	rec = doRequest(srv, http.MethodGet, "/api/v1/matches", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpointNeedsNoAuth(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{},
		Injuries:  &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/health", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthDegradesToServiceUnavailable(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{},
		Injuries:  &mocks.InjuryServiceMock{},
		HealthCheckers: []ports.HealthChecker{
			&mocks.HealthCheckerMock{NameValue: "fifa_api", CheckFn: func(ctx context.Context) error {
				return errors.New("unreachable")
			}},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/health", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
}

func TestListMatches_UpstreamFailureDegrades(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{
			GetMatchesFn: func(ctx context.Context) ([]match.Record, error) {
				return nil, &ports.UpstreamError{Endpoint: "calendar", Status: 502}
			},
		},
		Injuries: &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches", true)
	assert.Equal(t, http.StatusOK, rec.Code, "degraded responses still render the dashboard")

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Upstream data is currently unavailable.", env.Warning)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestGetMatchTimeline_NotFoundIsEmptyWithoutWarning(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{
			GetMatchTimelineFn: func(ctx context.Context, matchID string) (*match.Timeline, error) {
				return nil, &ports.NotFoundError{Resource: "match", ID: matchID}
			},
		},
		Injuries: &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches/nope/timeline", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Empty(t, env.Warning)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestListMatches_TeamFilter(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{
			GetMatchesFn: func(ctx context.Context) ([]match.Record, error) {
				return []match.Record{
					{MatchID: "m1", HomeName: "Brazil", AwayName: "Spain", Kickoff: time.Date(2024, 9, 14, 17, 0, 0, 0, time.UTC)},
					{MatchID: "m2", HomeName: "Iran", AwayName: "France", Kickoff: time.Date(2024, 9, 15, 17, 0, 0, 0, time.UTC)},
				}, nil
			},
		},
		Injuries: &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches?team=Brazil", true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var records []match.Record
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].MatchID)
}

func TestGetMatchMinuteChart_IncludesTeamColors(t *testing.T) {
	palette := teamcolor.Palette{}
	palette.Add(teamcolor.Entry{Name: "Brazil", Home: "#ffdf00", Away: "#009739"})

	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{
			GetMatchTimelineFn: func(ctx context.Context, matchID string) (*match.Timeline, error) {
				return &match.Timeline{
					Match: match.Record{MatchID: matchID, HomeID: "t1", HomeName: "Brazil", AwayID: "t2", AwayName: "Spain"},
					Events: []match.Event{
						{TeamID: "t1", Type: match.EventGoal, Minute: 12},
						{TeamID: "t2", Type: match.EventAttempt, Minute: 13},
					},
				}, nil
			},
		},
		Injuries: &mocks.InjuryServiceMock{},
		Colors:   palette,
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches/m1/charts/minutes", true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var payload struct {
		Buckets []struct {
			Bucket int    `json:"bucket"`
			Team   string `json:"team"`
			Count  int    `json:"count"`
		} `json:"buckets"`
		Teams map[string]struct {
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	require.Len(t, payload.Buckets, 2, "minutes 12 and 13 share a bucket but belong to different teams")
	assert.Equal(t, "#ffdf00", payload.Teams["t1"].Color)
	assert.Equal(t, teamcolor.DefaultAway, payload.Teams["t2"].Color, "unknown teams get the default color")
}

func TestGetMatchMinuteChart_TeamFilter(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{
			GetMatchTimelineFn: func(ctx context.Context, matchID string) (*match.Timeline, error) {
				return &match.Timeline{
					Match: match.Record{MatchID: matchID, HomeID: "t1", HomeName: "Brazil", AwayID: "t2", AwayName: "Spain"},
					Events: []match.Event{
						{TeamID: "t1", Type: match.EventGoal, Minute: 12},
						{TeamID: "t2", Type: match.EventAttempt, Minute: 13},
						{TeamID: "t2", Type: match.EventAttempt, Minute: 30},
					},
				}, nil
			},
		},
		Injuries: &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches/m1/charts/minutes?team=t2", true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var payload struct {
		Buckets []struct {
			Team  string `json:"team"`
			Count int    `json:"count"`
		} `json:"buckets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	require.Len(t, payload.Buckets, 2)
	for _, b := range payload.Buckets {
		assert.Equal(t, "t2", b.Team)
	}
}

func TestGetMatchTimeline_TeamFilter(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{
			GetMatchTimelineFn: func(ctx context.Context, matchID string) (*match.Timeline, error) {
				return &match.Timeline{
					Match: match.Record{MatchID: matchID, HomeID: "t1", AwayID: "t2"},
					Rows: []match.TimelineRow{
						{TeamID: "t1", PlayerName: "Ferrao", Type: match.EventGoal},
						{TeamID: "t2", PlayerName: "Pito", Type: match.EventAttempt},
					},
				}, nil
			},
		},
		Injuries: &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/matches/m1/timeline?team=t1", true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var payload struct {
		Rows []match.TimelineRow `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Len(t, payload.Rows, 1)
	assert.Equal(t, "Ferrao", payload.Rows[0].PlayerName)
}

func TestListInjuries_SyntheticFlag(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{},
		Injuries: &mocks.InjuryServiceMock{
			GetInjuriesFn: func(ctx context.Context) ([]injury.Record, error) {
				return []injury.Record{
					{Player: "Player 1", Type: injury.TypeMuscle, Severity: injury.SeverityMinor, Date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Synthetic: true},
				}, nil
			},
		},
	})

	rec := doRequest(srv, http.MethodGet, "/api/v1/injuries", true)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Synthetic)
}

func TestClearCache(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "calendar:288439:288440", []byte(`[]`), time.Hour))

	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{},
		Injuries:  &mocks.InjuryServiceMock{},
		Cache:     store,
	})

	rec := doRequest(srv, http.MethodDelete, "/api/v1/cache", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, store.Len())

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cleared", body["status"])
}

func TestClearCache_NoCacheConfigured(t *testing.T) {
	srv := newTestServer(t, httpserver.ServerDeps{
		MatchData: &mocks.MatchDataServiceMock{},
		Injuries:  &mocks.InjuryServiceMock{},
	})

	rec := doRequest(srv, http.MethodDelete, "/api/v1/cache", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no cache configured", body["status"])
}
