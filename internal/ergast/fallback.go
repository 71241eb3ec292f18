package ergast

import (
	"context"

	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// Fallback is a Feed that tries a primary source and, when it fails,
// retries the same call against a secondary one. Callers stay unaware
// of which host answered.
type Fallback struct {
	primary   Feed
	secondary Feed
	log       *zap.Logger
}

// NewFallback composes two feeds into one.
func NewFallback(primary, secondary Feed, log *zap.Logger) *Fallback {
	return &Fallback{primary: primary, secondary: secondary, log: log}
}

func (f *Fallback) Schedule(ctx context.Context, year int) ([]domain.Race, error) {
	races, err := f.primary.Schedule(ctx, year)
	if err == nil {
		return races, nil
	}
	f.log.Warn("primary feed failed, trying secondary", zap.Error(err))
	return f.secondary.Schedule(ctx, year)
}

func (f *Fallback) DriverStandings(ctx context.Context, year int) ([]domain.DriverStanding, error) {
	s, err := f.primary.DriverStandings(ctx, year)
	if err == nil {
		return s, nil
	}
	f.log.Warn("primary feed failed, trying secondary", zap.Error(err))
	return f.secondary.DriverStandings(ctx, year)
}

func (f *Fallback) ConstructorStandings(ctx context.Context, year int) ([]domain.ConstructorStanding, error) {
	s, err := f.primary.ConstructorStandings(ctx, year)
	if err == nil {
		return s, nil
	}
	f.log.Warn("primary feed failed, trying secondary", zap.Error(err))
	return f.secondary.ConstructorStandings(ctx, year)
}

func (f *Fallback) LastRaceResults(ctx context.Context) (domain.Race, []domain.RaceResult, error) {
	race, results, err := f.primary.LastRaceResults(ctx)
	if err == nil {
		return race, results, nil
	}
	f.log.Warn("primary feed failed, trying secondary", zap.Error(err))
	return f.secondary.LastRaceResults(ctx)
}
