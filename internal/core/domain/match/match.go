package match

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// EventType classifies a timeline event. The upstream API only localizes
// descriptions, so anything that is not a goal or an attempt at goal is Other.
type EventType string

const (
	EventGoal    EventType = "Goal"
	EventAttempt EventType = "Attempt"
	EventOther   EventType = "Other"
)

// Record is one match from the tournament calendar. Immutable once fetched;
// it lives only as long as its cache entry.
type Record struct {
	MatchID   string    `json:"match_id"`
	StageName string    `json:"stage_name"`
	GroupName string    `json:"group_name"`
	HomeID    string    `json:"home_id"`
	HomeName  string    `json:"home_name"`
	AwayID    string    `json:"away_id"`
	AwayName  string    `json:"away_name"`
	Kickoff   time.Time `json:"kickoff"`
	MatchName string    `json:"match_name"`
}

// Event is one entry from a match timeline.
type Event struct {
	MatchID     string    `json:"match_id"`
	TeamID      string    `json:"team_id"`
	PlayerID    string    `json:"player_id"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	MatchMinute string    `json:"match_minute"`
	Minute      int       `json:"minute"`
}

// TimelineRow is an event joined with team and player names for table display.
type TimelineRow struct {
	TeamID      string    `json:"team_id"`
	TeamName    string    `json:"team_name"`
	PlayerID    string    `json:"player_id"`
	PlayerName  string    `json:"player_name"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	MatchMinute string    `json:"match_minute"`
	Minute      int       `json:"minute"`
}

// Timeline bundles a calendar row with its enriched attacking events.
type Timeline struct {
	Match  Record        `json:"match"`
	Events []Event       `json:"-"`
	Rows   []TimelineRow `json:"rows"`
}

// ParseEventType maps a localized event description onto the enum.
func ParseEventType(description string) EventType {
	switch description {
	case "Goal!":
		return EventGoal
	case "Attempt at Goal":
		return EventAttempt
	default:
		return EventOther
	}
}

var minuteRe = regexp.MustCompile(`(\d+)`)

// ParseMinute extracts the minute from strings like "7'", "45'+2" or "90".
// Unparseable values become minute 0.
func ParseMinute(raw string) int {
	m := minuteRe.FindString(raw)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

var groupRe = regexp.MustCompile(`(?i)Group\s+([A-Z])`)

func groupOrder(groupName string) int {
	m := groupRe.FindStringSubmatch(groupName)
	if m == nil {
		return 999
	}
	return int(strings.ToUpper(m[1])[0]) - 'A' + 1
}

var stageOrderTable = []struct {
	re    *regexp.Regexp
	order int
}{
	{regexp.MustCompile(`(?i)group`), 100},
	{regexp.MustCompile(`(?i)round\s*of\s*16|sixteen`), 200},
	{regexp.MustCompile(`(?i)quarter`), 300},
	{regexp.MustCompile(`(?i)semi`), 400},
	{regexp.MustCompile(`(?i)third|3rd`), 500},
	{regexp.MustCompile(`(?i)final`), 600},
}

func stageOrder(stageName string) int {
	for _, s := range stageOrderTable {
		if s.re.MatchString(stageName) {
			return s.order
		}
	}
	return 700
}

// Sort orders matches by group letter, tournament stage, kickoff and name,
// so group-stage fixtures come first and the final last.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if ga, gb := groupOrder(a.GroupName), groupOrder(b.GroupName); ga != gb {
			return ga < gb
		}
		if sa, sb := stageOrder(a.StageName), stageOrder(b.StageName); sa != sb {
			return sa < sb
		}
		if !a.Kickoff.Equal(b.Kickoff) {
			return a.Kickoff.Before(b.Kickoff)
		}
		return a.MatchName < b.MatchName
	})
}

// Filter returns the matches within the date range (inclusive, date
// granularity) involving the given team. Zero values mean "no filter".
func Filter(records []Record, team string, from, to time.Time) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		day := r.Kickoff.UTC().Truncate(24 * time.Hour)
		if !from.IsZero() && day.Before(from.UTC().Truncate(24*time.Hour)) {
			continue
		}
		if !to.IsZero() && day.After(to.UTC().Truncate(24*time.Hour)) {
			continue
		}
		if team != "" && r.HomeName != team && r.AwayName != team {
			continue
		}
		out = append(out, r)
	}
	return out
}
