package squad

// Record is one player of a team squad. Squads change rarely, so the cache
// keeps them for a day.
type Record struct {
	TeamID     string `json:"team_id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
}

// NameIndex maps player IDs to display names for timeline joins.
func NameIndex(records []Record) map[string]string {
	idx := make(map[string]string, len(records))
	for _, r := range records {
		if r.PlayerID != "" {
			idx[r.PlayerID] = r.PlayerName
		}
	}
	return idx
}
