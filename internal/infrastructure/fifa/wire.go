package fifa

import (
	"encoding/json"
	"strings"
)

// flexID tolerates upstream identifiers arriving as strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

// localized is the API's list-of-descriptions shape for translated fields.
type localized []struct {
	Description string `json:"Description"`
}

func (l localized) first() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Description
}

type teamRef struct {
	IdTeam        flexID    `json:"IdTeam"`
	ShortClubName string    `json:"ShortClubName"`
	TeamName      localized `json:"TeamName"`
}

func (t teamRef) name() string {
	if t.ShortClubName != "" {
		return t.ShortClubName
	}
	return t.TeamName.first()
}

type calendarResponse struct {
	Results []struct {
		IdMatch   flexID    `json:"IdMatch"`
		StageName localized `json:"StageName"`
		GroupName localized `json:"GroupName"`
		Home      *teamRef  `json:"Home"`
		Away      *teamRef  `json:"Away"`
		LocalDate string    `json:"LocalDate"`
		Date      string    `json:"Date"`
	} `json:"Results"`
}

type timelineResponse struct {
	Event []struct {
		IdTeam        flexID    `json:"IdTeam"`
		IdPlayer      flexID    `json:"IdPlayer"`
		TypeLocalized localized `json:"TypeLocalized"`
		MatchMinute   string    `json:"MatchMinute"`
	} `json:"Event"`
}

type squadResponse struct {
	Players []struct {
		IdTeam            flexID    `json:"IdTeam"`
		IdPlayer          flexID    `json:"IdPlayer"`
		ShortName         localized `json:"ShortName"`
		PositionLocalized localized `json:"PositionLocalized"`
	} `json:"Players"`
}
