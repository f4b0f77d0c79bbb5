// Package aggregate turns raw record collections into chart-ready tables.
// Every function is pure: no I/O, no errors — empty or malformed input
// degrades to empty output.
package aggregate

import (
	"sort"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
)

// DefaultBucketSize is two minutes, roughly the original dashboard's 40 bins
// over a futsal match.
const DefaultBucketSize = 2

// MinuteBucket is one bar of the per-minute histogram. Bucket is the start
// minute of the interval; Team is empty when grouping is off.
type MinuteBucket struct {
	Bucket int    `json:"bucket"`
	Team   string `json:"team,omitempty"`
	Count  int    `json:"count"`
}

// EventsPerMinute buckets events by fixed minute intervals, grouped by team
// identifier when byTeam is set. Output is sparse — empty buckets are
// omitted — and ordered by bucket start, then team, with no duplicate
// (bucket, team) keys.
func EventsPerMinute(events []match.Event, bucketSize int, byTeam bool) []MinuteBucket {
	if bucketSize <= 0 {
		bucketSize = DefaultBucketSize
	}

	type key struct {
		bucket int
		team   string
	}
	counts := make(map[key]int, len(events))
	for _, e := range events {
		k := key{bucket: e.Minute / bucketSize * bucketSize}
		if byTeam {
			k.team = e.TeamID
		}
		counts[k]++
	}

	out := make([]MinuteBucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, MinuteBucket{Bucket: k.bucket, Team: k.team, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bucket != out[j].Bucket {
			return out[i].Bucket < out[j].Bucket
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// EventTypeDistribution counts events per type across the full set.
func EventTypeDistribution(events []match.Event) map[match.EventType]int {
	out := make(map[match.EventType]int, 3)
	for _, e := range events {
		out[e.Type]++
	}
	return out
}

// AttackingEvents keeps only goals and attempts at goal.
func AttackingEvents(events []match.Event) []match.Event {
	out := make([]match.Event, 0, len(events))
	for _, e := range events {
		if e.Type == match.EventGoal || e.Type == match.EventAttempt {
			out = append(out, e)
		}
	}
	return out
}

// FilterEventsByTeam keeps events of one team; an empty team means no filter.
func FilterEventsByTeam(events []match.Event, teamID string) []match.Event {
	if teamID == "" {
		return events
	}
	out := make([]match.Event, 0, len(events))
	for _, e := range events {
		if e.TeamID == teamID {
			out = append(out, e)
		}
	}
	return out
}

// InjuryGroup is one row of the injury rollup. Month is "YYYY-MM", empty when
// monthly grouping is off.
type InjuryGroup struct {
	Month    string          `json:"month,omitempty"`
	Type     injury.Type     `json:"type"`
	Severity injury.Severity `json:"severity"`
	Count    int             `json:"count"`
}

// InjuryRollup groups injuries by (type, severity) and, when byMonth is set,
// by calendar month. Group counts always sum to the input length.
func InjuryRollup(records []injury.Record, byMonth bool) []InjuryGroup {
	type key struct {
		month    string
		typ      injury.Type
		severity injury.Severity
	}
	counts := make(map[key]int, len(records))
	for _, r := range records {
		k := key{typ: r.Type, severity: r.Severity}
		if byMonth {
			k.month = r.Date.Format("2006-01")
		}
		counts[k]++
	}

	out := make([]InjuryGroup, 0, len(counts))
	for k, n := range counts {
		out = append(out, InjuryGroup{Month: k.month, Type: k.typ, Severity: k.severity, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Severity < out[j].Severity
	})
	return out
}
