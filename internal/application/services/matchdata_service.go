package services

import (
	"context"
	"time"

	"github.com/matchpulse/futsal-dashboard/internal/application/aggregate"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/squad"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// CacheTTLs is the per-dataset staleness policy.
type CacheTTLs struct {
	Calendar time.Duration
	Events   time.Duration
	Squad    time.Duration
	Injuries time.Duration
}

// MatchDataService orchestrates the cache layer around the sports-data
// client and reshapes raw records for the dashboard.
type MatchDataService struct {
	client   ports.SportsDataClient
	cache    ports.Cache
	ttls     CacheTTLs
	seasonID string
	stageID  string
	logger   *logrus.Logger
}

func NewMatchDataService(client ports.SportsDataClient, cache ports.Cache, ttls CacheTTLs, seasonID, stageID string, logger *logrus.Logger) ports.MatchDataService {
	return &MatchDataService{
		client:   client,
		cache:    cache,
		ttls:     ttls,
		seasonID: seasonID,
		stageID:  stageID,
		logger:   logger,
	}
}

// GetMatches returns the season calendar sorted by stage, group and kickoff.
func (s *MatchDataService) GetMatches(ctx context.Context) ([]match.Record, error) {
	records, err := getOrFetch(ctx, s.cache, ports.DatasetCalendar, s.seasonID+":"+s.stageID, s.ttls.Calendar, func() ([]match.Record, error) {
		return s.client.FetchCalendar(ctx, s.seasonID, s.stageID)
	})
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("failed to load match calendar")
		}
		return nil, err
	}
	match.Sort(records)
	return records, nil
}

// GetMatchEvents returns the raw timeline of one match.
func (s *MatchDataService) GetMatchEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	if matchID == "" {
		return nil, &ports.NotFoundError{Resource: "match", ID: matchID}
	}
	return getOrFetch(ctx, s.cache, ports.DatasetEvents, matchID, s.ttls.Events, func() ([]match.Event, error) {
		return s.client.FetchEvents(ctx, matchID)
	})
}

// GetSquads returns the squads of the given teams. A team that fails to load
// is skipped so one bad squad does not empty the whole join.
func (s *MatchDataService) GetSquads(ctx context.Context, teamIDs ...string) ([]squad.Record, error) {
	var out []squad.Record
	for _, teamID := range teamIDs {
		if teamID == "" {
			continue
		}
		id := teamID
		records, err := getOrFetch(ctx, s.cache, ports.DatasetSquad, id, s.ttls.Squad, func() ([]squad.Record, error) {
			return s.client.FetchSquad(ctx, id)
		})
		if err != nil {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{"team_id": id}).WithError(err).Warn("failed to load squad, skipping team")
			}
			continue
		}
		out = append(out, records...)
	}
	return out, nil
}

// GetMatchTimeline returns the attacking events of one match enriched with
// team and player names.
func (s *MatchDataService) GetMatchTimeline(ctx context.Context, matchID string) (*match.Timeline, error) {
	matches, err := s.GetMatches(ctx)
	if err != nil {
		return nil, err
	}

	var row *match.Record
	for i := range matches {
		if matches[i].MatchID == matchID {
			row = &matches[i]
			break
		}
	}
	if row == nil {
		return nil, &ports.NotFoundError{Resource: "match", ID: matchID}
	}

	events, err := s.GetMatchEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}
	squads, err := s.GetSquads(ctx, row.HomeID, row.AwayID)
	if err != nil {
		return nil, err
	}

	teamNames := map[string]string{row.HomeID: row.HomeName, row.AwayID: row.AwayName}
	playerNames := squad.NameIndex(squads)

	attacking := aggregate.AttackingEvents(events)
	rows := make([]match.TimelineRow, 0, len(attacking))
	for _, e := range attacking {
		rows = append(rows, match.TimelineRow{
			TeamID:      e.TeamID,
			TeamName:    teamNames[e.TeamID],
			PlayerID:    e.PlayerID,
			PlayerName:  playerNames[e.PlayerID],
			Type:        e.Type,
			Description: e.Description,
			MatchMinute: e.MatchMinute,
			Minute:      e.Minute,
		})
	}

	return &match.Timeline{Match: *row, Events: attacking, Rows: rows}, nil
}
