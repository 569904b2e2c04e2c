package standings

import (
	"strings"

	"github.com/matzehuels/standings/pkg/errors"
)

// TeamsPerDivision is the number of teams a complete division holds.
const TeamsPerDivision = 5

// Conference is a league abbreviation: "AL" or "NL".
type Conference string

const (
	AL Conference = "AL"
	NL Conference = "NL"
)

// Conferences lists both conferences in build order.
var Conferences = []Conference{AL, NL}

// Valid reports whether c is a known conference.
func (c Conference) Valid() bool { return c == AL || c == NL }

// ParseConference accepts "AL" or "NL" in any case.
func ParseConference(s string) (Conference, error) {
	c := Conference(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.New(errors.ErrCodeInvalidConference, "unknown conference %q (want AL or NL)", s)
	}
	return c, nil
}

// Division is a division abbreviation: "E", "C" or "W".
type Division string

const (
	East    Division = "E"
	Central Division = "C"
	West    Division = "W"
)

// Divisions lists the divisions in build order.
var Divisions = []Division{East, Central, West}

// Valid reports whether d is a known division.
func (d Division) Valid() bool { return d.Name() != "" }

// Name returns the full upper-case name used in image titles, or "" for an
// unknown division.
func (d Division) Name() string {
	switch d {
	case East:
		return "EAST"
	case Central:
		return "CENTRAL"
	case West:
		return "WEST"
	}
	return ""
}

// ParseDivision accepts "E", "C" or "W" in any case.
func ParseDivision(s string) (Division, error) {
	d := Division(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", errors.New(errors.ErrCodeInvalidDivision, "unknown division %q (want E, C or W)", s)
	}
	return d, nil
}

// TeamRecord is one team's standing within its division.
type TeamRecord struct {
	TeamID                    int     `json:"teamId"`
	Name                      string  `json:"name,omitempty"`
	Location                  string  `json:"location"`
	DivisionRank              string  `json:"divisionRank,omitempty"`
	Wins                      int     `json:"wins"`
	Losses                    int     `json:"losses"`
	GamesBack                 float64 `json:"gamesBack"` // 0 for the leader, never negative
	LastTen                   string  `json:"lastTen"`   // "W-L" or ""
	Streak                    string  `json:"streak"`
	ClinchIndicator           string  `json:"clinchIndicator"`
	EliminationNumber         string  `json:"eliminationNumber"`
	WildCardEliminationNumber string  `json:"wildCardEliminationNumber"`
	MagicNumber               string  `json:"magicNumber"`
}

// League maps each division to its teams in rank order.
type League map[Division][]TeamRecord

// Snapshot is the full standings for both conferences.
type Snapshot map[Conference]League

// NewSnapshot returns a snapshot with every conference and division present
// and empty.
func NewSnapshot() Snapshot {
	snap := make(Snapshot, len(Conferences))
	for _, c := range Conferences {
		league := make(League, len(Divisions))
		for _, d := range Divisions {
			league[d] = []TeamRecord{}
		}
		snap[c] = league
	}
	return snap
}

// Division returns a copy of the teams in one division.
//
// It fails with INVALID_CONFERENCE or INVALID_DIVISION for an unknown
// selector, and with INCOMPLETE_DATA unless the division holds exactly
// [TeamsPerDivision] teams.
func (s Snapshot) Division(conf Conference, div Division) ([]TeamRecord, error) {
	if !conf.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidConference, "unknown conference %q", string(conf))
	}
	if !div.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidDivision, "unknown division %q", string(div))
	}
	teams := s[conf][div]
	if len(teams) != TeamsPerDivision {
		return nil, errors.New(errors.ErrCodeIncompleteData,
			"%s %s has %d teams, want %d", conf, div.Name(), len(teams), TeamsPerDivision)
	}
	out := make([]TeamRecord, len(teams))
	copy(out, teams)
	return out, nil
}

// Complete reports whether every division of both conferences is complete.
func (s Snapshot) Complete() bool {
	for _, c := range Conferences {
		for _, d := range Divisions {
			if len(s[c][d]) != TeamsPerDivision {
				return false
			}
		}
	}
	return true
}
