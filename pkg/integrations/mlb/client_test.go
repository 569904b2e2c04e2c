package mlb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/standings/pkg/integrations"
	"github.com/matzehuels/standings/pkg/observability"
)

const sampleBody = `{
  "records": [
    {
      "standingsType": "regularSeason",
      "league": {"id": 103},
      "division": {"id": 201},
      "teamRecords": [
        {
          "team": {"id": 111, "name": "Boston Red Sox"},
          "streak": {"streakCode": "W2"},
          "divisionRank": "1",
          "gamesBack": "-",
          "clinchIndicator": "z",
          "eliminationNumber": "-",
          "wildCardEliminationNumber": "-",
          "magicNumber": "-",
          "wins": 108,
          "losses": 54,
          "records": {"splitRecords": [
            {"type": "home", "wins": 57, "losses": 24},
            {"type": "lastTen", "wins": 6, "losses": 4}
          ]}
        }
      ]
    }
  ]
}`

func testClient(t *testing.T, url string) *Client {
	t.Helper()
	return NewClient(url, "standings-test", time.Second)
}

func TestClient_FetchStandings(t *testing.T) {
	var gotPath, gotLeague, gotSeason, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLeague = r.URL.Query().Get("leagueId")
		gotSeason = r.URL.Query().Get("season")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	records, err := testClient(t, server.URL).FetchStandings(context.Background(), AmericanLeague, 2018)
	if err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}

	if gotPath != "/standings" {
		t.Errorf("path = %q, want /standings", gotPath)
	}
	if gotLeague != "103" || gotSeason != "2018" {
		t.Errorf("query = leagueId=%s season=%s", gotLeague, gotSeason)
	}
	if gotUA != "standings-test" {
		t.Errorf("User-Agent = %q", gotUA)
	}

	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.League == nil || rec.League.ID != 103 || rec.Division == nil || rec.Division.ID != 201 {
		t.Errorf("league/division = %+v/%+v", rec.League, rec.Division)
	}
	tr := rec.TeamRecords[0]
	if tr.Team.ID != 111 || *tr.Wins != 108 || *tr.Losses != 54 || *tr.GamesBack != "-" {
		t.Errorf("team record = %+v", tr)
	}
	if tr.Streak == nil || tr.Streak.StreakCode != "W2" {
		t.Errorf("streak = %+v", tr.Streak)
	}
	if tr.ClinchIndicator != "z" {
		t.Errorf("clinchIndicator = %q", tr.ClinchIndicator)
	}
}

func TestClient_FetchStandings_TrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL+"/").FetchStandings(context.Background(), NationalLeague, 2026); err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}
	if gotPath != "/standings" {
		t.Errorf("path = %q, want /standings", gotPath)
	}
}

func TestClient_FetchStandings_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"empty records", http.StatusOK, `{"records": []}`, integrations.ErrEmpty},
		{"no records field", http.StatusOK, `{"copyright": "x"}`, integrations.ErrEmpty},
		{"empty body", http.StatusOK, ``, integrations.ErrEmpty},
		{"server error", http.StatusBadGateway, ``, integrations.ErrNetwork},
		{"not found", http.StatusNotFound, ``, integrations.ErrNotFound},
		{"wrong shape", http.StatusOK, `{"records": {"a": 1}}`, integrations.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			records, err := testClient(t, server.URL).FetchStandings(context.Background(), AmericanLeague, 2026)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if records != nil {
				t.Errorf("records = %v, want nil", records)
			}
		})
	}
}

type recordingFetchHooks struct {
	observability.NoopFetchHooks
	mu      sync.Mutex
	started []int
	counts  []int
	errs    []error
}

func (h *recordingFetchHooks) OnFetchStart(_ context.Context, leagueID int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, leagueID)
}

func (h *recordingFetchHooks) OnFetchComplete(_ context.Context, _ int, records int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counts = append(h.counts, records)
	h.errs = append(h.errs, err)
}

func TestClient_FetchStandings_Hooks(t *testing.T) {
	hooks := &recordingFetchHooks{}
	observability.SetFetchHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL).FetchStandings(context.Background(), NationalLeague, 2026); err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}
	if len(hooks.started) != 1 || hooks.started[0] != NationalLeague {
		t.Errorf("started = %v", hooks.started)
	}
	if len(hooks.counts) != 1 || hooks.counts[0] != 1 || hooks.errs[0] != nil {
		t.Errorf("complete = %v / %v", hooks.counts, hooks.errs)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "", 0)
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	want := DefaultBaseURL + "/standings?leagueId=104&season=2026"
	if got := c.standingsURL(NationalLeague, 2026); got != want {
		t.Errorf("standingsURL = %q, want %q", got, want)
	}
}

func TestTeamRecord_Split(t *testing.T) {
	tr := TeamRecord{Records: &SplitRecords{SplitRecords: []SplitRecord{
		{Type: "home", Wins: 10, Losses: 5},
		{Type: "lastTen", Wins: 7, Losses: 3},
	}}}

	s, ok := tr.Split("lastTen")
	if !ok || s.Wins != 7 || s.Losses != 3 {
		t.Errorf("Split(lastTen) = %+v, %v", s, ok)
	}
	if _, ok := tr.Split("extraInning"); ok {
		t.Error("Split(extraInning) should be absent")
	}
	if _, ok := (TeamRecord{}).Split("lastTen"); ok {
		t.Error("Split on nil records should be absent")
	}
}
