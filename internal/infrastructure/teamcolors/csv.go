package teamcolors

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/teamcolor"
)

// Load reads the team palette CSV (name,abbr,home_color,away_color). A
// missing file is not an error: charts fall back to the default colors.
func Load(path string) (teamcolor.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return teamcolor.Palette{}, nil
		}
		return nil, fmt.Errorf("open team colors file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read team colors file: %w", err)
	}

	palette := teamcolor.Palette{}
	for i, row := range rows {
		if len(row) < 4 {
			continue
		}
		// Skip a header row if present.
		if i == 0 && row[0] == "name" {
			continue
		}
		palette.Add(teamcolor.Entry{Name: row[0], Abbr: row[1], Home: row[2], Away: row[3]})
	}
	return palette, nil
}
