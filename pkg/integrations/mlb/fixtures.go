package mlb

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/standings/pkg/integrations"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// Fixtures serves canned standings for both leagues without touching the
// network. The season argument is ignored.
type Fixtures struct{}

// FetchStandings decodes the embedded sample feed for leagueID.
func (Fixtures) FetchStandings(ctx context.Context, leagueID, season int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fixtureFS.ReadFile(fmt.Sprintf("fixtures/standings-%d.json", leagueID))
	if err != nil {
		return nil, fmt.Errorf("mlb fixture league %d: %w", leagueID, integrations.ErrNotFound)
	}
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("mlb fixture league %d: %w: %v", leagueID, integrations.ErrDecode, err)
	}
	if len(resp.Records) == 0 {
		return nil, fmt.Errorf("mlb fixture league %d: %w", leagueID, integrations.ErrEmpty)
	}
	return resp.Records, nil
}
