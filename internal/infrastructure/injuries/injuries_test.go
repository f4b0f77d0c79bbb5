package injuries

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "injuries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Load(t *testing.T) {
	path := writeCSV(t, "Date,Player,Type,Severity,DaysOut\n"+
		"2024-09-03,Ferrao,Muscle,Moderate,10\n"+
		"2024-09-10,Pito,Joint,Severe,21\n")

	records, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Ferrao", records[0].Player)
	assert.Equal(t, injury.TypeMuscle, records[0].Type)
	assert.Equal(t, injury.SeverityModerate, records[0].Severity)
	assert.Equal(t, 10, records[0].DaysOut)
	assert.Equal(t, time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.False(t, records[0].Synthetic)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestFileSource_HeaderMismatchFails(t *testing.T) {
	path := writeCSV(t, "When,Player,Type,Severity,DaysOut\n2024-09-03,Ferrao,Muscle,Moderate,10\n")

	_, err := NewFileSource(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource_BadDateRowDropped(t *testing.T) {
	path := writeCSV(t, "Date,Player,Type,Severity,DaysOut\n"+
		"not-a-date,Ferrao,Muscle,Moderate,10\n"+
		"2024-09-10,Pito,Joint,Severe,21\n")

	records, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Pito", records[0].Player)
}

func TestFileSource_MissingFileFails(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	assert.Error(t, err)
}

func TestSyntheticSource_DeterministicSchedule(t *testing.T) {
	records, err := NewSyntheticSource().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 40)

	for i, r := range records {
		assert.True(t, r.Synthetic, "record %d must be flagged synthetic", i)
	}

	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, time.Date(2024, 8, 4, 0, 0, 0, 0, time.UTC), records[1].Date)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 39*3), records[39].Date)

	assert.Equal(t, "Player 1", records[0].Player)
	assert.Equal(t, "Player 8", records[7].Player)
	assert.Equal(t, "Player 1", records[8].Player)

	assert.Equal(t, injury.TypeMuscle, records[0].Type)
	assert.Equal(t, injury.SeverityMinor, records[0].Severity)
	assert.Equal(t, 3, records[0].DaysOut)
	assert.Equal(t, injury.TypeOveruse, records[2].Type)
	assert.Equal(t, injury.SeveritySevere, records[2].Severity)
	assert.Equal(t, 21, records[2].DaysOut)
	assert.Equal(t, injury.TypeMuscle, records[4].Type, "types cycle with period four")
}
