package ports

import (
	"context"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/squad"
)

// MatchDataService serves cached tournament data to the dashboard layer.
type MatchDataService interface {
	// GetMatches returns the full calendar, sorted by stage, group and kickoff.
	GetMatches(ctx context.Context) ([]match.Record, error)
	// GetMatchEvents returns the raw timeline of one match.
	GetMatchEvents(ctx context.Context, matchID string) ([]match.Event, error)
	// GetSquads returns the squads of the given teams. Teams that fail to
	// load are skipped.
	GetSquads(ctx context.Context, teamIDs ...string) ([]squad.Record, error)
	// GetMatchTimeline returns the attacking events of one match enriched
	// with team and player names.
	GetMatchTimeline(ctx context.Context, matchID string) (*match.Timeline, error)
}

// InjuryService serves the injury dataset, falling back to synthetic rows
// when the real dataset is unavailable.
type InjuryService interface {
	GetInjuries(ctx context.Context) ([]injury.Record, error)
}
