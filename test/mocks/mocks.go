package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/squad"
)

// SportsDataClientMock is a lightweight mock for SportsDataClient
type SportsDataClientMock struct {
	FetchCalendarFn func(ctx context.Context, seasonID, stageID string) ([]match.Record, error)
	FetchEventsFn   func(ctx context.Context, matchID string) ([]match.Event, error)
	FetchSquadFn    func(ctx context.Context, teamID string) ([]squad.Record, error)

	CalendarCalls int
	EventsCalls   int
	SquadCalls    int
}

func (m *SportsDataClientMock) FetchCalendar(ctx context.Context, seasonID, stageID string) ([]match.Record, error) {
	m.CalendarCalls++
	if m.FetchCalendarFn != nil {
		return m.FetchCalendarFn(ctx, seasonID, stageID)
	}
	return nil, nil
}

func (m *SportsDataClientMock) FetchEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	m.EventsCalls++
	if m.FetchEventsFn != nil {
		return m.FetchEventsFn(ctx, matchID)
	}
	return nil, nil
}

func (m *SportsDataClientMock) FetchSquad(ctx context.Context, teamID string) ([]squad.Record, error) {
	m.SquadCalls++
	if m.FetchSquadFn != nil {
		return m.FetchSquadFn(ctx, teamID)
	}
	return nil, nil
}

// InjurySourceMock is a lightweight mock for InjurySource
type InjurySourceMock struct {
	LoadFn    func(ctx context.Context) ([]injury.Record, error)
	LoadCalls int
}

func (m *InjurySourceMock) Load(ctx context.Context) ([]injury.Record, error) {
	m.LoadCalls++
	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}
	return nil, fmt.Errorf("no data")
}

// MatchDataServiceMock is a lightweight mock for MatchDataService
type MatchDataServiceMock struct {
	GetMatchesFn       func(ctx context.Context) ([]match.Record, error)
	GetMatchEventsFn   func(ctx context.Context, matchID string) ([]match.Event, error)
	GetSquadsFn        func(ctx context.Context, teamIDs ...string) ([]squad.Record, error)
	GetMatchTimelineFn func(ctx context.Context, matchID string) (*match.Timeline, error)
}

func (m *MatchDataServiceMock) GetMatches(ctx context.Context) ([]match.Record, error) {
	if m.GetMatchesFn != nil {
		return m.GetMatchesFn(ctx)
	}
	return nil, nil
}

func (m *MatchDataServiceMock) GetMatchEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	if m.GetMatchEventsFn != nil {
		return m.GetMatchEventsFn(ctx, matchID)
	}
	return nil, nil
}

func (m *MatchDataServiceMock) GetSquads(ctx context.Context, teamIDs ...string) ([]squad.Record, error) {
	if m.GetSquadsFn != nil {
		return m.GetSquadsFn(ctx, teamIDs...)
	}
	return nil, nil
}

func (m *MatchDataServiceMock) GetMatchTimeline(ctx context.Context, matchID string) (*match.Timeline, error) {
	if m.GetMatchTimelineFn != nil {
		return m.GetMatchTimelineFn(ctx, matchID)
	}
	return nil, fmt.Errorf("not found")
}

// InjuryServiceMock is a lightweight mock for InjuryService
type InjuryServiceMock struct {
	GetInjuriesFn func(ctx context.Context) ([]injury.Record, error)
}

func (m *InjuryServiceMock) GetInjuries(ctx context.Context) ([]injury.Record, error) {
	if m.GetInjuriesFn != nil {
		return m.GetInjuriesFn(ctx)
	}
	return nil, nil
}

// HealthCheckerMock is a lightweight mock for HealthChecker
type HealthCheckerMock struct {
	NameValue string
	CheckFn   func(ctx context.Context) error
}

func (m *HealthCheckerMock) Name() string {
	if m.NameValue != "" {
		return m.NameValue
	}
	return "mock"
}

func (m *HealthCheckerMock) Check(ctx context.Context) error {
	if m.CheckFn != nil {
		return m.CheckFn(ctx)
	}
	return nil
}

// CacheMock is a lightweight mock for Cache
type CacheMock struct {
	GetFn    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error
	ClearFn  func(ctx context.Context) error
}

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, false, nil
}

func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *CacheMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}

func (m *CacheMock) Clear(ctx context.Context) error {
	if m.ClearFn != nil {
		return m.ClearFn(ctx)
	}
	return nil
}
