package aggregate_test

import (
	"testing"
	"time"

	"github.com/matchpulse/futsal-dashboard/internal/application/aggregate"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/match"
)

func event(team string, minute int, typ match.EventType) match.Event {
	return match.Event{TeamID: team, Minute: minute, Type: typ}
}

func TestEventsPerMinute_BucketsAreOrderedAndUnique(t *testing.T) {
	events := []match.Event{
		event("t2", 39, match.EventAttempt),
		event("t1", 1, match.EventGoal),
		event("t1", 0, match.EventAttempt),
		event("t1", 38, match.EventAttempt),
		event("t2", 5, match.EventGoal),
	}

	buckets := aggregate.EventsPerMinute(events, 2, true)

	seen := map[[2]interface{}]bool{}
	prev := -1
	for _, b := range buckets {
		if b.Bucket < prev {
			t.Fatalf("buckets not ordered: %d after %d", b.Bucket, prev)
		}
		prev = b.Bucket
		key := [2]interface{}{b.Bucket, b.Team}
		if seen[key] {
			t.Fatalf("duplicate bucket key %v", key)
		}
		seen[key] = true
	}

	// minute 0 and 1 share bucket 0 for t1
	if buckets[0].Bucket != 0 || buckets[0].Team != "t1" || buckets[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", buckets[0])
	}
}

func TestEventsPerMinute_SparseOutput(t *testing.T) {
	events := []match.Event{event("t1", 0, match.EventGoal), event("t1", 38, match.EventGoal)}
	buckets := aggregate.EventsPerMinute(events, 2, false)
	if len(buckets) != 2 {
		t.Fatalf("expected sparse output with 2 buckets, got %d", len(buckets))
	}
}

func TestEventsPerMinute_NoTeamGrouping(t *testing.T) {
	events := []match.Event{event("t1", 3, match.EventGoal), event("t2", 3, match.EventGoal)}
	buckets := aggregate.EventsPerMinute(events, 2, false)
	if len(buckets) != 1 || buckets[0].Count != 2 || buckets[0].Team != "" {
		t.Fatalf("expected one merged bucket, got %+v", buckets)
	}
}

func TestEventsPerMinute_EmptyInput(t *testing.T) {
	if got := aggregate.EventsPerMinute(nil, 2, true); len(got) != 0 {
		t.Fatalf("expected empty output, got %+v", got)
	}
}

func TestEventTypeDistribution(t *testing.T) {
	if got := aggregate.EventTypeDistribution(nil); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}

	events := []match.Event{
		event("t1", 1, match.EventGoal),
		event("t1", 2, match.EventGoal),
		event("t1", 3, match.EventGoal),
		event("t2", 4, match.EventAttempt),
		event("t2", 5, match.EventAttempt),
	}
	got := aggregate.EventTypeDistribution(events)
	if got[match.EventGoal] != 3 || got[match.EventAttempt] != 2 {
		t.Fatalf("unexpected distribution: %v", got)
	}
}

func TestAttackingEvents(t *testing.T) {
	events := []match.Event{
		event("t1", 1, match.EventGoal),
		event("t1", 2, match.EventOther),
		event("t2", 3, match.EventAttempt),
	}
	got := aggregate.AttackingEvents(events)
	if len(got) != 2 {
		t.Fatalf("expected 2 attacking events, got %d", len(got))
	}
	for _, e := range got {
		if e.Type == match.EventOther {
			t.Fatalf("Other event leaked through: %+v", e)
		}
	}
}

func TestFilterEventsByTeam(t *testing.T) {
	events := []match.Event{
		event("t1", 1, match.EventGoal),
		event("t2", 2, match.EventAttempt),
		event("t1", 3, match.EventAttempt),
	}

	cases := []struct {
		name string
		team string
		want int
	}{
		{"one side", "t1", 2},
		{"other side", "t2", 1},
		{"empty team means no filter", "", 3},
		{"unknown team", "t3", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := aggregate.FilterEventsByTeam(events, c.team)
			if len(got) != c.want {
				t.Fatalf("FilterEventsByTeam(%q) kept %d events, want %d", c.team, len(got), c.want)
			}
			for _, e := range got {
				if c.team != "" && e.TeamID != c.team {
					t.Fatalf("event of team %s leaked through filter for %s", e.TeamID, c.team)
				}
			}
		})
	}
}

func TestInjuryRollup_CountsSumToInputLength(t *testing.T) {
	day := func(month time.Month, d int) time.Time {
		return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
	}
	records := []injury.Record{
		{Date: day(time.August, 1), Type: injury.TypeMuscle, Severity: injury.SeverityMinor},
		{Date: day(time.August, 4), Type: injury.TypeMuscle, Severity: injury.SeverityMinor},
		{Date: day(time.August, 7), Type: injury.TypeImpact, Severity: injury.SeverityModerate},
		{Date: day(time.September, 1), Type: injury.TypeMuscle, Severity: injury.SeverityMinor},
		{Date: day(time.September, 2), Type: injury.TypeJoint, Severity: injury.SeveritySevere},
	}

	rollup := aggregate.InjuryRollup(records, true)

	total := 0
	for _, g := range rollup {
		total += g.Count
	}
	if total != len(records) {
		t.Fatalf("rollup counts sum to %d, want %d", total, len(records))
	}

	// August muscle/minor collapses into one group of two.
	first := rollup[0]
	if first.Month != "2024-08" || first.Type != injury.TypeImpact {
		t.Fatalf("unexpected first group: %+v", first)
	}
}

func TestInjuryRollup_WithoutMonth(t *testing.T) {
	records := []injury.Record{
		{Date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Type: injury.TypeMuscle, Severity: injury.SeverityMinor},
		{Date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), Type: injury.TypeMuscle, Severity: injury.SeverityMinor},
	}
	rollup := aggregate.InjuryRollup(records, false)
	if len(rollup) != 1 || rollup[0].Count != 2 || rollup[0].Month != "" {
		t.Fatalf("expected a single month-less group, got %+v", rollup)
	}
}

func TestInjuryRollup_EmptyInput(t *testing.T) {
	if got := aggregate.InjuryRollup(nil, true); len(got) != 0 {
		t.Fatalf("expected empty rollup, got %+v", got)
	}
}
