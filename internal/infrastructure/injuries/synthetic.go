package injuries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
)

// The fixed fallback schedule: 40 records starting 2024-08-01, one every
// three days, cycling through eight players and four type/severity/days-out
// combinations.
const (
	syntheticCount   = 40
	syntheticPlayers = 8
	syntheticStepDay = 3
)

var (
	syntheticStart      = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	syntheticTypes      = []injury.Type{injury.TypeMuscle, injury.TypeImpact, injury.TypeOveruse, injury.TypeJoint}
	syntheticSeverities = []injury.Severity{injury.SeverityMinor, injury.SeverityModerate, injury.SeveritySevere, injury.SeverityMinor}
	syntheticDaysOut    = []int{3, 10, 21, 5}
)

// SyntheticSource generates plausible injury rows when the real dataset is
// unreachable. Every record carries the synthetic flag.
type SyntheticSource struct{}

func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{}
}

// Load implements ports.InjurySource.
func (s *SyntheticSource) Load(_ context.Context) ([]injury.Record, error) {
	out := make([]injury.Record, 0, syntheticCount)
	for i := 0; i < syntheticCount; i++ {
		out = append(out, injury.Record{
			ID:        uuid.New(),
			Date:      syntheticStart.AddDate(0, 0, i*syntheticStepDay),
			Player:    fmt.Sprintf("Player %d", i%syntheticPlayers+1),
			Type:      syntheticTypes[i%len(syntheticTypes)],
			Severity:  syntheticSeverities[i%len(syntheticSeverities)],
			DaysOut:   syntheticDaysOut[i%len(syntheticDaysOut)],
			Synthetic: true,
		})
	}
	return out, nil
}
