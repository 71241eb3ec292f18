// Package ergast fetches race schedules, standings and results from an
// Ergast-compatible F1 data API (api.jolpi.ca or ergast.com).
package ergast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// Feed is the read-only race data source the rest of the bot depends
// on. Client implements it against one API host; Fallback composes two.
type Feed interface {
	Schedule(ctx context.Context, year int) ([]domain.Race, error)
	DriverStandings(ctx context.Context, year int) ([]domain.DriverStanding, error)
	ConstructorStandings(ctx context.Context, year int) ([]domain.ConstructorStanding, error)
	LastRaceResults(ctx context.Context) (domain.Race, []domain.RaceResult, error)
}

const (
	requestTimeout = 10 * time.Second

	// jolpi.ca enforces a burst quota; stay well under it.
	requestsPerSecond = 2
	requestBurst      = 4
)

// Client talks to a single Ergast-compatible host.
type Client struct {
	httpc   *http.Client
	baseURL string
	source  string // label for logs and metrics, e.g. "jolpi"
	limiter *rate.Limiter
	metrics *Metrics
	log     *zap.Logger
}

// NewClient builds a Client for baseURL. source names the host in logs
// and metrics. metrics may be nil.
func NewClient(baseURL, source string, metrics *Metrics, log *zap.Logger) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		source:  source,
		limiter: rate.NewLimiter(requestsPerSecond, requestBurst),
		metrics: metrics,
		log:     log,
	}
}

// fetch GETs {base}/{endpoint}.json and decodes the MRData envelope.
// Any failure wraps domain.ErrDataUnavailable.
func (c *Client) fetch(ctx context.Context, endpoint string) (*envelope, error) {
	start := time.Now()
	env, err := c.doFetch(ctx, endpoint)
	c.metrics.observe(endpoint, c.source, err, time.Since(start))
	if err != nil {
		c.log.Warn("ergast request failed",
			zap.String("endpoint", endpoint),
			zap.String("source", c.source),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrDataUnavailable, c.source, endpoint, err)
	}
	return env, nil
}

func (c *Client) doFetch(ctx context.Context, endpoint string) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	url := c.baseURL + "/" + endpoint + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &env, nil
}

// Schedule returns the full race calendar for a year, ordered by round.
func (c *Client) Schedule(ctx context.Context, year int) ([]domain.Race, error) {
	env, err := c.fetch(ctx, strconv.Itoa(year))
	if err != nil {
		return nil, err
	}
	races := make([]domain.Race, 0, len(env.MRData.RaceTable.Races))
	for _, w := range env.MRData.RaceTable.Races {
		r, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: race %s/%s: %v", domain.ErrDataUnavailable, w.Season, w.Round, err)
		}
		races = append(races, r)
	}
	sort.Slice(races, func(i, j int) bool { return races[i].Round < races[j].Round })
	return races, nil
}

// DriverStandings returns the current driver championship table.
func (c *Client) DriverStandings(ctx context.Context, year int) ([]domain.DriverStanding, error) {
	env, err := c.fetch(ctx, fmt.Sprintf("%d/driverStandings", year))
	if err != nil {
		return nil, err
	}
	lists := env.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return nil, nil
	}
	out := make([]domain.DriverStanding, 0, len(lists[0].DriverStandings))
	for _, w := range lists[0].DriverStandings {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// ConstructorStandings returns the current constructor championship table.
func (c *Client) ConstructorStandings(ctx context.Context, year int) ([]domain.ConstructorStanding, error) {
	env, err := c.fetch(ctx, fmt.Sprintf("%d/constructorStandings", year))
	if err != nil {
		return nil, err
	}
	lists := env.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return nil, nil
	}
	out := make([]domain.ConstructorStanding, 0, len(lists[0].ConstructorStandings))
	for _, w := range lists[0].ConstructorStandings {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// LastRaceResults returns the most recently completed race and its
// classified finishers.
func (c *Client) LastRaceResults(ctx context.Context) (domain.Race, []domain.RaceResult, error) {
	env, err := c.fetch(ctx, "current/last/results")
	if err != nil {
		return domain.Race{}, nil, err
	}
	races := env.MRData.RaceTable.Races
	if len(races) == 0 {
		return domain.Race{}, nil, fmt.Errorf("%w: no completed races", domain.ErrDataUnavailable)
	}
	race, err := races[0].toDomain()
	if err != nil {
		return domain.Race{}, nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}
	results := make([]domain.RaceResult, 0, len(races[0].Results))
	for _, w := range races[0].Results {
		results = append(results, w.toDomain())
	}
	return race, results, nil
}

// NextRace returns the first race of the year starting after now, or
// domain.ErrNotFound when the season is over.
func NextRace(ctx context.Context, feed Feed, year int, now time.Time) (domain.Race, error) {
	races, err := feed.Schedule(ctx, year)
	if err != nil {
		return domain.Race{}, err
	}
	for _, r := range races {
		if r.Start.After(now) {
			return r, nil
		}
	}
	return domain.Race{}, domain.ErrNotFound
}
