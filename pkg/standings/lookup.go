package standings

import "github.com/matzehuels/standings/pkg/integrations/mlb"

var conferenceByLeague = map[int]Conference{
	mlb.AmericanLeague: AL,
	mlb.NationalLeague: NL,
}

type divisionKey struct {
	conf Conference
	div  Division
}

var divisionByID = map[int]divisionKey{
	200: {AL, West},
	201: {AL, East},
	202: {AL, Central},
	203: {NL, West},
	204: {NL, East},
	205: {NL, Central},
}

// locationByTeam holds the short display name drawn in the team column.
var locationByTeam = map[int]string{
	108: "LA Angels",
	109: "Arizona",
	110: "Baltimore",
	111: "Boston",
	112: "Chicago Cubs",
	113: "Cincinnati",
	114: "Cleveland",
	115: "Colorado",
	116: "Detroit",
	117: "Houston",
	118: "Kansas City",
	119: "LA Dodgers",
	120: "Washington",
	121: "NY Mets",
	133: "Athletics",
	134: "Pittsburgh",
	135: "San Diego",
	136: "Seattle",
	137: "San Francisco",
	138: "St. Louis",
	139: "Tampa Bay",
	140: "Texas",
	141: "Toronto",
	142: "Minnesota",
	143: "Philadelphia",
	144: "Atlanta",
	145: "Chicago Sox",
	146: "Miami",
	147: "NY Yankees",
	158: "Milwaukee",
}

// LeagueID returns the feed league id for c, or 0 if c is unknown.
func (c Conference) LeagueID() int {
	for id, conf := range conferenceByLeague {
		if conf == c {
			return id
		}
	}
	return 0
}

// Location returns the display location for a feed team id.
func Location(teamID int) (string, bool) {
	loc, ok := locationByTeam[teamID]
	return loc, ok
}
