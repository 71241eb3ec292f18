package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// RefreshFeed is the slice of the feed the refresh job pulls from.
type RefreshFeed interface {
	Schedule(ctx context.Context, year int) ([]domain.Race, error)
	DriverStandings(ctx context.Context, year int) ([]domain.DriverStanding, error)
	ConstructorStandings(ctx context.Context, year int) ([]domain.ConstructorStanding, error)
}

// Cache is the slice of the store the refresh job writes to.
type Cache interface {
	ReplaceRaces(ctx context.Context, season int, races []domain.Race) error
	ReplaceDriverStandings(ctx context.Context, season int, standings []domain.DriverStanding) error
	ReplaceConstructorStandings(ctx context.Context, season int, standings []domain.ConstructorStanding) error
}

// Refresh warms the local race/standings cache on a cron schedule
// (default every six hours), so handlers have data to fall back on when
// the live feed is down.
type Refresh struct {
	feed   RefreshFeed
	cache  Cache
	log    *zap.Logger
	cron   string
	season int
	now    func() time.Time
}

// NewRefresh validates the cron expression and creates the job.
func NewRefresh(feed RefreshFeed, cache Cache, log *zap.Logger, cron string, season int) (*Refresh, error) {
	if !gronx.New().IsValid(cron) {
		return nil, fmt.Errorf("invalid cron expression %q", cron)
	}
	return &Refresh{
		feed:   feed,
		cache:  cache,
		log:    log,
		cron:   cron,
		season: season,
		now:    time.Now,
	}, nil
}

// Run warms the cache once immediately, then follows the cron schedule
// until ctx is canceled.
func (j *Refresh) Run(ctx context.Context) {
	j.refresh(ctx)

	for {
		next, err := gronx.NextTickAfter(j.cron, j.now(), false)
		if err != nil {
			j.log.Error("cron evaluation failed", zap.Error(err))
			return
		}
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			j.log.Info("refresh job stopping")
			return
		case <-timer.C:
			j.refresh(ctx)
		}
	}
}

// refresh pulls the calendar and both standings tables and swaps the
// cached copies. Each section fails independently; a partial refresh
// is still better than none.
func (j *Refresh) refresh(ctx context.Context) {
	j.log.Info("race data refresh started", zap.Int("season", j.season))

	races, err := j.feed.Schedule(ctx, j.season)
	if err != nil {
		j.log.Error("schedule refresh failed", zap.Error(err))
	} else if err := j.cache.ReplaceRaces(ctx, j.season, races); err != nil {
		j.log.Error("schedule cache write failed", zap.Error(err))
	} else {
		j.log.Info("schedule cached", zap.Int("races", len(races)))
	}

	drivers, err := j.feed.DriverStandings(ctx, j.season)
	if err != nil {
		j.log.Error("driver standings refresh failed", zap.Error(err))
	} else if err := j.cache.ReplaceDriverStandings(ctx, j.season, drivers); err != nil {
		j.log.Error("driver standings cache write failed", zap.Error(err))
	}

	teams, err := j.feed.ConstructorStandings(ctx, j.season)
	if err != nil {
		j.log.Error("constructor standings refresh failed", zap.Error(err))
	} else if err := j.cache.ReplaceConstructorStandings(ctx, j.season, teams); err != nil {
		j.log.Error("constructor standings cache write failed", zap.Error(err))
	}
}
