package injury

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeMuscle  Type = "Muscle"
	TypeImpact  Type = "Impact"
	TypeOveruse Type = "Overuse"
	TypeJoint   Type = "Joint"
)

type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// Record is one injury row. Synthetic marks rows generated from the bundled
// fallback schedule rather than the real dataset.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Player    string    `json:"player"`
	Type      Type      `json:"type"`
	Severity  Severity  `json:"severity"`
	DaysOut   int       `json:"days_out"`
	Synthetic bool      `json:"synthetic,omitempty"`
}

// Filter narrows records by player, type and date range. Zero values mean
// "no filter"; an empty input yields an empty output.
func Filter(records []Record, player string, injuryType Type, from, to time.Time) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if player != "" && r.Player != player {
			continue
		}
		if injuryType != "" && r.Type != injuryType {
			continue
		}
		if !from.IsZero() && r.Date.Before(from) {
			continue
		}
		if !to.IsZero() && r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AnySynthetic reports whether the set contains fallback rows, so the UI can
// flag the dataset.
func AnySynthetic(records []Record) bool {
	for _, r := range records {
		if r.Synthetic {
			return true
		}
	}
	return false
}
