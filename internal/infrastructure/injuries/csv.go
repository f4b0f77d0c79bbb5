package injuries

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
)

// expectedHeader is the schema the fallback file must match exactly.
var expectedHeader = []string{"Date", "Player", "Type", "Severity", "DaysOut"}

const dateLayout = "2006-01-02"

// FileSource loads injury records from a local CSV file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements ports.InjurySource. Rows with an unparseable date are
// dropped; a header that deviates from the schema is a load error so the
// caller can fall back to the synthetic schedule.
func (s *FileSource) Load(_ context.Context) ([]injury.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open injuries file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read injuries file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("injuries file %s is empty", s.path)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	out := make([]injury.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			continue
		}
		daysOut, _ := strconv.Atoi(row[4])
		out = append(out, injury.Record{
			ID:       uuid.New(),
			Date:     date,
			Player:   row[1],
			Type:     injury.Type(row[2]),
			Severity: injury.Severity(row[3]),
			DaysOut:  daysOut,
		})
	}
	return out, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("injuries file has %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, name := range expectedHeader {
		if header[i] != name {
			return fmt.Errorf("injuries file column %d is %q, want %q", i, header[i], name)
		}
	}
	return nil
}
