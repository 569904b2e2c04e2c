// Package mlb provides an HTTP client for the MLB stats API standings endpoint.
//
// # Overview
//
// One request per league returns that league's three divisions:
//
//	GET https://statsapi.mlb.com/api/v1/standings?leagueId=103&season=2026
//
// League 103 is the American League and 104 the National League. Each
// [Record] carries a league and division reference plus the division's team
// records in rank order.
//
// # Usage
//
//	client := mlb.NewClient("", "", 0)
//	records, err := client.FetchStandings(ctx, mlb.AmericanLeague, 2026)
//
// [Fixtures] implements the same method from embedded sample data and is used
// when running without network access.
//
// # Typing
//
// Fields that consumers cannot do without (wins, losses, gamesBack, league and
// division) decode into pointers so that an omitted field is distinguishable
// from a zero value.
package mlb
