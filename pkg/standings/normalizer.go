package standings

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/standings/pkg/cache"
	"github.com/matzehuels/standings/pkg/errors"
	"github.com/matzehuels/standings/pkg/integrations/mlb"
)

const (
	// CacheKeyPrefix starts every snapshot cache key.
	CacheKeyPrefix = "standings"

	// RefreshHour is the local hour at which a cached snapshot expires.
	RefreshHour = 4
)

// Source supplies raw standings for one league and season.
// [mlb.Client] and [mlb.Fixtures] both satisfy it.
type Source interface {
	FetchStandings(ctx context.Context, leagueID, season int) ([]mlb.Record, error)
}

// Option configures a [Normalizer].
type Option func(*Normalizer)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithClock overrides the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithCacheNamespace keeps this normalizer's snapshots apart from those of
// other sources sharing the cache, e.g. "fixtures".
func WithCacheNamespace(ns string) Option {
	return func(n *Normalizer) { n.namespace = ns }
}

// Normalizer builds snapshots from a [Source], caching the result.
//
// Concurrent calls on a cold cache may each fetch; the later cache write
// simply replaces the earlier one.
type Normalizer struct {
	source    Source
	cache     cache.Cache
	logger    *log.Logger
	now       func() time.Time
	namespace string
}

// NewNormalizer creates a Normalizer. A nil cache disables caching.
func NewNormalizer(source Source, c cache.Cache, opts ...Option) *Normalizer {
	if c == nil {
		c = cache.NewNullCache()
	}
	n := &Normalizer{
		source: source,
		cache:  c,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NextRefresh returns when the current snapshot stops being served from the
// cache: the next 04:00 local time.
func (n *Normalizer) NextRefresh() time.Time {
	return cache.NextDaily(n.now(), RefreshHour)
}

// CacheKey returns the cache entry name for season, e.g. "standings-2026"
// or "standings-fixtures-2026" in a namespace.
func (n *Normalizer) CacheKey(season int) string {
	if n.namespace != "" {
		return fmt.Sprintf("%s-%s-%d", CacheKeyPrefix, n.namespace, season)
	}
	return fmt.Sprintf("%s-%d", CacheKeyPrefix, season)
}

// Snapshot returns the standings for season.
//
// A cached snapshot is returned without any fetching. Otherwise both leagues
// are fetched and parsed; a complete result is cached until
// [Normalizer.NextRefresh]. A snapshot with a short division is returned but
// not cached, so the next call fetches again.
//
// Errors:
//   - INVALID_SEASON for a season outside the supported range
//   - FETCH_FAILED if either league cannot be fetched
//   - PARSE_FAILED if either league's feed has a missing or malformed field
//
// A cache write failure is logged and does not fail the call.
func (n *Normalizer) Snapshot(ctx context.Context, season int) (Snapshot, error) {
	if err := errors.ValidateSeason(season); err != nil {
		return nil, err
	}

	key := n.CacheKey(season)
	var snap Snapshot
	if n.cache.Get(key, &snap) {
		n.logger.Debug("standings: served from cache", "season", season)
		return snap, nil
	}

	snap = NewSnapshot()
	for _, league := range mlb.Leagues {
		records, err := n.source.FetchStandings(ctx, league, season)
		if err != nil {
			n.logger.Warn("standings: no data", "league", league, "season", season, "err", err)
			return nil, errors.Wrap(errors.ErrCodeFetchFailed, err, "fetch league %d season %d", league, season)
		}
		if err := snap.add(league, records); err != nil {
			n.logger.Error("standings: error parsing data", "league", league, "err", err)
			return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "parse league %d", league)
		}
		n.logger.Debug("standings: league parsed", "league", league, "divisions", len(records))
	}

	if !snap.Complete() {
		n.logger.Warn("standings: snapshot has incomplete divisions, not caching", "season", season)
		return snap, nil
	}

	if err := n.cache.Set(key, snap, n.NextRefresh()); err != nil {
		n.logger.Warn("standings: cache write failed", "err", err)
	}
	return snap, nil
}

// add parses one league's records into s. The records must all belong to
// leagueID.
func (s Snapshot) add(leagueID int, records []mlb.Record) error {
	want, ok := conferenceByLeague[leagueID]
	if !ok {
		return fmt.Errorf("unknown league id %d", leagueID)
	}
	for i, rec := range records {
		if rec.League == nil {
			return fmt.Errorf("record %d: missing league", i)
		}
		if rec.League.ID != leagueID {
			return fmt.Errorf("record %d: league %d, want %d", i, rec.League.ID, leagueID)
		}
		if rec.Division == nil {
			return fmt.Errorf("record %d: missing division", i)
		}
		key, ok := divisionByID[rec.Division.ID]
		if !ok {
			return fmt.Errorf("record %d: unknown division id %d", i, rec.Division.ID)
		}
		if key.conf != want {
			return fmt.Errorf("record %d: division %d is not in %s", i, rec.Division.ID, want)
		}
		for j, tr := range rec.TeamRecords {
			team, err := parseTeam(tr)
			if err != nil {
				return fmt.Errorf("record %d team %d: %w", i, j, err)
			}
			s[key.conf][key.div] = append(s[key.conf][key.div], team)
		}
	}
	return nil
}

func parseTeam(tr mlb.TeamRecord) (TeamRecord, error) {
	location, ok := Location(tr.Team.ID)
	if !ok {
		return TeamRecord{}, fmt.Errorf("unknown team id %d", tr.Team.ID)
	}
	if tr.Wins == nil || tr.Losses == nil {
		return TeamRecord{}, fmt.Errorf("team %d: missing wins or losses", tr.Team.ID)
	}
	if *tr.Wins < 0 || *tr.Losses < 0 {
		return TeamRecord{}, fmt.Errorf("team %d: negative record %d-%d", tr.Team.ID, *tr.Wins, *tr.Losses)
	}
	if tr.GamesBack == nil {
		return TeamRecord{}, fmt.Errorf("team %d: missing gamesBack", tr.Team.ID)
	}
	gb, err := ParseGamesBack(*tr.GamesBack)
	if err != nil {
		return TeamRecord{}, fmt.Errorf("team %d: %w", tr.Team.ID, err)
	}

	team := TeamRecord{
		TeamID:                    tr.Team.ID,
		Name:                      tr.Team.Name,
		Location:                  location,
		DivisionRank:              tr.DivisionRank,
		Wins:                      *tr.Wins,
		Losses:                    *tr.Losses,
		GamesBack:                 gb,
		ClinchIndicator:           tr.ClinchIndicator,
		EliminationNumber:         tr.EliminationNumber,
		WildCardEliminationNumber: tr.WildCardEliminationNumber,
		MagicNumber:               tr.MagicNumber,
	}
	if tr.Streak != nil {
		team.Streak = tr.Streak.StreakCode
	}
	if split, ok := tr.Split("lastTen"); ok {
		team.LastTen = FormatRecord(split.Wins, split.Losses)
	}
	return team, nil
}

// ParseGamesBack converts the feed's games-back field: "-" is zero, anything
// else must be a finite, non-negative decimal.
func ParseGamesBack(s string) (float64, error) {
	if s == "-" {
		return 0, nil
	}
	gb, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid gamesBack %q", s)
	}
	if math.IsNaN(gb) || math.IsInf(gb, 0) || gb < 0 {
		return 0, fmt.Errorf("invalid gamesBack %q", s)
	}
	return gb, nil
}
