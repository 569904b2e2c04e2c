package mlb

// Response is the body of GET /standings.
type Response struct {
	Records []Record `json:"records"`
}

// Record is one division's standings. Team records arrive in rank order.
type Record struct {
	StandingsType string       `json:"standingsType"`
	League        *Ref         `json:"league"`
	Division      *Ref         `json:"division"`
	TeamRecords   []TeamRecord `json:"teamRecords"`
}

// Ref is an id/link reference to another API resource.
type Ref struct {
	ID   int    `json:"id"`
	Link string `json:"link,omitempty"`
}

// TeamRecord is a single team's line in a division.
//
// Pointer fields are required by consumers; nil means the feed omitted them.
type TeamRecord struct {
	Team                      Team          `json:"team"`
	Streak                    *Streak       `json:"streak,omitempty"`
	DivisionRank              string        `json:"divisionRank,omitempty"`
	GamesBack                 *string       `json:"gamesBack"`
	ClinchIndicator           string        `json:"clinchIndicator,omitempty"`
	Clinched                  bool          `json:"clinched,omitempty"`
	EliminationNumber         string        `json:"eliminationNumber,omitempty"`
	WildCardEliminationNumber string        `json:"wildCardEliminationNumber,omitempty"`
	MagicNumber               string        `json:"magicNumber,omitempty"`
	Wins                      *int          `json:"wins"`
	Losses                    *int          `json:"losses"`
	Records                   *SplitRecords `json:"records,omitempty"`
}

// Team identifies a club.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// Streak is the current run of wins or losses, e.g. "W3".
type Streak struct {
	StreakCode string `json:"streakCode"`
}

// SplitRecords groups the situational records (home, away, lastTen, ...).
type SplitRecords struct {
	SplitRecords []SplitRecord `json:"splitRecords"`
}

// SplitRecord is a win/loss record for one situation.
type SplitRecord struct {
	Type   string `json:"type"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct,omitempty"`
}

// Split returns the split record of the given type, if present.
func (r TeamRecord) Split(kind string) (SplitRecord, bool) {
	if r.Records == nil {
		return SplitRecord{}, false
	}
	for _, s := range r.Records.SplitRecords {
		if s.Type == kind {
			return s, true
		}
	}
	return SplitRecord{}, false
}
