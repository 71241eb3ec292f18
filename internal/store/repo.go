package store

import (
	"context"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// Repo defines storage operations for users, reminders and the cached
// race data warmed by the periodic refresh job.
type Repo interface {
	// Users
	EnsureUser(ctx context.Context, userID, chatID int64) error
	GetUser(ctx context.Context, chatID int64) (*domain.User, error)
	SetTimezone(ctx context.Context, chatID int64, tz string) error
	SetLanguage(ctx context.Context, chatID int64, lang string) error

	// Reminders. At most one row exists per (userID, eventID); upsert
	// overwrites remind_before and returns the row id.
	UpsertReminder(ctx context.Context, userID, chatID int64, eventID string, remindBefore int) (int64, error)
	ListRemindersByEvent(ctx context.Context, eventID string) ([]domain.Reminder, error)
	ListRemindersByUser(ctx context.Context, userID int64) ([]domain.Reminder, error)
	ListAllReminders(ctx context.Context) ([]domain.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
	DeleteReminderByUser(ctx context.Context, id, userID int64) error

	// Race data cache
	ReplaceRaces(ctx context.Context, season int, races []domain.Race) error
	ListRaces(ctx context.Context, season int) ([]domain.Race, error)
	ReplaceDriverStandings(ctx context.Context, season int, standings []domain.DriverStanding) error
	ListDriverStandings(ctx context.Context, season int) ([]domain.DriverStanding, error)
	ReplaceConstructorStandings(ctx context.Context, season int, standings []domain.ConstructorStanding) error
	ListConstructorStandings(ctx context.Context, season int) ([]domain.ConstructorStanding, error)

	Close() error
}
