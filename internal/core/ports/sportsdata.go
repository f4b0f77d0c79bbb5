package ports

import (
	"context"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/squad"
)

// SportsDataClient issues requests to the remote sports-data service and
// normalizes responses into typed records. It owns no state; every call is a
// single attempt.
type SportsDataClient interface {
	FetchCalendar(ctx context.Context, seasonID, stageID string) ([]match.Record, error)
	FetchEvents(ctx context.Context, matchID string) ([]match.Event, error)
	FetchSquad(ctx context.Context, teamID string) ([]squad.Record, error)
}

// InjurySource loads injury records from a dataset (file, upstream, or the
// bundled synthetic schedule).
type InjurySource interface {
	Load(ctx context.Context) ([]injury.Record, error)
}
