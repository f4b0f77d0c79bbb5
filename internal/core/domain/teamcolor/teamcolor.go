package teamcolor

import (
	"strconv"
	"strings"
)

// Defaults used when a team has no palette entry.
const (
	DefaultHome = "#1f77b4"
	DefaultAway = "#2ca02c"
)

// Entry holds the primary and secondary colors of one team.
type Entry struct {
	Name string
	Abbr string
	Home string
	Away string
}

// Palette maps normalized team names to their colors.
type Palette map[string]Entry

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add stores an entry under its normalized name and abbreviation.
func (p Palette) Add(e Entry) {
	if e.Name != "" {
		p[normalize(e.Name)] = e
	}
	if e.Abbr != "" {
		p[normalize(e.Abbr)] = e
	}
}

func (p Palette) lookup(name string) Entry {
	if p != nil {
		if e, ok := p[normalize(name)]; ok {
			return e
		}
	}
	return Entry{Home: DefaultHome, Away: DefaultAway}
}

// Pick selects chart colors for the two sides. When both primaries are too
// close to tell apart, the away side falls back to its secondary color.
func (p Palette) Pick(homeName, awayName string) (string, string) {
	home := p.lookup(homeName)
	away := p.lookup(awayName)

	hc, ac := home.Home, away.Home
	if similar(hc, ac) {
		ac = away.Away
	}
	return hc, ac
}

// similar reports whether two hex colors are within manhattan RGB distance 90.
func similar(c1, c2 string) bool {
	r1, g1, b1, ok1 := rgb(c1)
	r2, g2, b2, ok2 := rgb(c2)
	if !ok1 || !ok2 {
		return false
	}
	return abs(r1-r2)+abs(g1-g2)+abs(b1-b2) < 90
}

func rgb(hex string) (r, g, b int, ok bool) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	parse := func(s string) (int, bool) {
		v, err := strconv.ParseInt(s, 16, 32)
		return int(v), err == nil
	}
	var okR, okG, okB bool
	r, okR = parse(h[0:2])
	g, okG = parse(h[2:4])
	b, okB = parse(h[4:6])
	return r, g, b, okR && okG && okB
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
