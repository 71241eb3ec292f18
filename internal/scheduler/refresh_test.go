package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

type stubRefreshFeed struct {
	scheduleErr error
	races       []domain.Race
	drivers     []domain.DriverStanding
	teams       []domain.ConstructorStanding
}

func (f *stubRefreshFeed) Schedule(context.Context, int) ([]domain.Race, error) {
	return f.races, f.scheduleErr
}

func (f *stubRefreshFeed) DriverStandings(context.Context, int) ([]domain.DriverStanding, error) {
	return f.drivers, nil
}

func (f *stubRefreshFeed) ConstructorStandings(context.Context, int) ([]domain.ConstructorStanding, error) {
	return f.teams, nil
}

type stubCache struct {
	races   [][]domain.Race
	drivers [][]domain.DriverStanding
	teams   [][]domain.ConstructorStanding
}

func (c *stubCache) ReplaceRaces(_ context.Context, _ int, r []domain.Race) error {
	c.races = append(c.races, r)
	return nil
}

func (c *stubCache) ReplaceDriverStandings(_ context.Context, _ int, s []domain.DriverStanding) error {
	c.drivers = append(c.drivers, s)
	return nil
}

func (c *stubCache) ReplaceConstructorStandings(_ context.Context, _ int, s []domain.ConstructorStanding) error {
	c.teams = append(c.teams, s)
	return nil
}

func TestNewRefreshValidatesCron(t *testing.T) {
	_, err := NewRefresh(&stubRefreshFeed{}, &stubCache{}, zap.NewNop(), "not a cron", 2025)
	require.Error(t, err)

	_, err = NewRefresh(&stubRefreshFeed{}, &stubCache{}, zap.NewNop(), "0 */6 * * *", 2025)
	require.NoError(t, err)
}

func TestRefreshWarmsAllCaches(t *testing.T) {
	feed := &stubRefreshFeed{
		races:   []domain.Race{{Season: 2025, Round: 5, Name: "Miami Grand Prix", Start: time.Now()}},
		drivers: []domain.DriverStanding{{DriverID: "piastri"}},
		teams:   []domain.ConstructorStanding{{ConstructorID: "mclaren"}},
	}
	cache := &stubCache{}
	j, err := NewRefresh(feed, cache, zap.NewNop(), "0 */6 * * *", 2025)
	require.NoError(t, err)

	j.refresh(context.Background())

	require.Len(t, cache.races, 1)
	require.Len(t, cache.drivers, 1)
	require.Len(t, cache.teams, 1)
}

func TestRefreshSectionsFailIndependently(t *testing.T) {
	feed := &stubRefreshFeed{
		scheduleErr: fmt.Errorf("%w: api down", domain.ErrDataUnavailable),
		drivers:     []domain.DriverStanding{{DriverID: "piastri"}},
		teams:       []domain.ConstructorStanding{{ConstructorID: "mclaren"}},
	}
	cache := &stubCache{}
	j, err := NewRefresh(feed, cache, zap.NewNop(), "0 */6 * * *", 2025)
	require.NoError(t, err)

	j.refresh(context.Background())

	// Schedule failed but standings still refreshed.
	require.Empty(t, cache.races)
	require.Len(t, cache.drivers, 1)
	require.Len(t, cache.teams, 1)
}
