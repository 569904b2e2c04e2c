package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/errors"
	"github.com/matzehuels/standings/pkg/integrations/mlb"
	"github.com/matzehuels/standings/pkg/standings"
)

func TestFilterTargets(t *testing.T) {
	tests := []struct {
		conf, div string
		want      []string
	}{
		{"", "", []string{"AL-E", "AL-C", "AL-W", "NL-E", "NL-C", "NL-W"}},
		{"nl", "", []string{"NL-E", "NL-C", "NL-W"}},
		{"", "W", []string{"AL-W", "NL-W"}},
		{"AL", "c", []string{"AL-C"}},
	}

	for _, tt := range tests {
		got, err := filterTargets(tt.conf, tt.div)
		if err != nil {
			t.Fatalf("filterTargets(%q, %q): %v", tt.conf, tt.div, err)
		}
		if names := targetNames(got); strings.Join(names, ",") != strings.Join(tt.want, ",") {
			t.Errorf("filterTargets(%q, %q) = %v, want %v", tt.conf, tt.div, names, tt.want)
		}
	}

	if _, err := filterTargets("XL", ""); !errors.Is(err, errors.ErrCodeInvalidConference) {
		t.Errorf("bad conference: err = %v", err)
	}
	if _, err := filterTargets("", "X"); !errors.Is(err, errors.ErrCodeInvalidDivision) {
		t.Errorf("bad division: err = %v", err)
	}
}

func targetNames(ts []builder.Target) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t.Conference) + "-" + string(t.Division)
	}
	return out
}

func TestStandingsTable(t *testing.T) {
	n := standings.NewNormalizer(mlb.Fixtures{}, nil)
	snap, err := n.Snapshot(context.Background(), 2026)
	if err != nil {
		t.Fatal(err)
	}
	teams, err := snap.Division(standings.AL, standings.East)
	if err != nil {
		t.Fatal(err)
	}

	out := standingsTable("AL EAST", teams)

	for _, want := range []string{"AL EAST", "Team", "L10", "NY Yankees", "2½", "60", "4-6"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, teams[0].Location) > strings.Index(out, teams[4].Location) {
		t.Error("table does not keep feed order")
	}
}
