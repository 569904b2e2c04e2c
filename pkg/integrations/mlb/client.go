package mlb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/standings/pkg/integrations"
	"github.com/matzehuels/standings/pkg/observability"
)

const (
	// DefaultBaseURL is the public stats API root.
	DefaultBaseURL = "https://statsapi.mlb.com/api/v1"

	// DefaultUserAgent identifies requests; the stats API rejects anonymous clients.
	DefaultUserAgent = "standings/1.0 (+https://github.com/matzehuels/standings)"
)

// League ids used by the standings endpoint.
const (
	AmericanLeague = 103
	NationalLeague = 104
)

// Leagues lists the league ids in fetch order.
var Leagues = []int{AmericanLeague, NationalLeague}

// Client fetches standings from the MLB stats API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a stats API client. Empty baseURL and userAgent select
// [DefaultBaseURL] and [DefaultUserAgent]; a zero timeout selects
// [integrations.DefaultTimeout].
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		Client: integrations.NewClient(map[string]string{
			"User-Agent": userAgent,
		}, timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchStandings returns the division records for one league and season.
//
// Returns:
//   - the records in feed order on success (never empty)
//   - [integrations.ErrEmpty] if the feed carries no records
//   - [integrations.ErrNotFound] or [integrations.ErrNetwork] for HTTP failures
//   - [integrations.ErrDecode] if the body is not standings JSON
func (c *Client) FetchStandings(ctx context.Context, leagueID, season int) (records []Record, err error) {
	start := time.Now()
	observability.Fetch().OnFetchStart(ctx, leagueID)
	defer func() {
		observability.Fetch().OnFetchComplete(ctx, leagueID, len(records), time.Since(start), err)
	}()

	var resp Response
	if err := c.Get(ctx, c.standingsURL(leagueID, season), &resp); err != nil {
		return nil, fmt.Errorf("mlb standings league %d: %w", leagueID, err)
	}
	if len(resp.Records) == 0 {
		return nil, fmt.Errorf("mlb standings league %d: %w", leagueID, integrations.ErrEmpty)
	}
	return resp.Records, nil
}

func (c *Client) standingsURL(leagueID, season int) string {
	q := url.Values{}
	q.Set("leagueId", strconv.Itoa(leagueID))
	q.Set("season", strconv.Itoa(season))
	return c.baseURL + "/standings?" + q.Encode()
}
