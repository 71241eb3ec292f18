// Package scheduler runs the bot's two background loops: the due-reminder
// scan and the periodic race data refresh.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/locale"
)

// Feed supplies the current season calendar. The scheduler re-fetches it
// every tick and never caches across ticks.
type Feed interface {
	Schedule(ctx context.Context, year int) ([]domain.Race, error)
}

// ReminderSource is the slice of the store the reminder loop needs.
type ReminderSource interface {
	ListAllReminders(ctx context.Context) ([]domain.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
	GetUser(ctx context.Context, chatID int64) (*domain.User, error)
}

// Sender delivers one text message. Implementations must bound each call
// so a stalled delivery cannot stall the whole tick.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Reminders periodically matches registered reminders against the race
// calendar and delivers due notifications, deleting each reminder after
// its first successful delivery.
type Reminders struct {
	feed     Feed
	repo     ReminderSource
	sender   Sender
	log      *zap.Logger
	season   int
	interval time.Duration
	now      func() time.Time
}

// NewReminders creates the reminder loop. interval is the tick period;
// 60s keeps the due window reasonably tight without hammering the feed.
func NewReminders(feed Feed, repo ReminderSource, sender Sender, log *zap.Logger, season int, interval time.Duration) *Reminders {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reminders{
		feed:     feed,
		repo:     repo,
		sender:   sender,
		log:      log,
		season:   season,
		interval: interval,
		now:      time.Now,
	}
}

// Run starts the loop until ctx is canceled. Ticks execute sequentially
// on this goroutine, so two scans can never overlap and race on the same
// due reminder.
func (s *Reminders) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("reminder scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick performs one due-reminder scan. A feed or store enumeration
// failure aborts the whole tick (nothing has been mutated yet); the next
// tick retries naturally. Failures past that point are isolated per
// reminder.
func (s *Reminders) tick(ctx context.Context) {
	now := s.now().UTC()

	races, err := s.feed.Schedule(ctx, s.season)
	if err != nil {
		s.log.Error("tick aborted: schedule fetch failed", zap.Error(err))
		return
	}

	// Only races that have not started can have deliverable reminders.
	// Rows pointing at past races stay dormant until the user deletes
	// them.
	upcoming := make(map[string]domain.Race, len(races))
	for _, race := range races {
		if race.Start.After(now) {
			upcoming[race.EventID()] = race
		}
	}

	reminders, err := s.repo.ListAllReminders(ctx)
	if err != nil {
		s.log.Error("tick aborted: reminder scan failed", zap.Error(err))
		return
	}

	for _, rem := range reminders {
		// Finish the current deliver/delete pair before honoring
		// shutdown, never stop between the two.
		select {
		case <-ctx.Done():
			return
		default:
		}

		race, ok := upcoming[rem.EventID]
		if !ok {
			continue
		}
		// Due once fireTime has passed. A reminder that missed its
		// one-tick window (skipped tick, failed delivery) is still due
		// and retries until delivered or the race starts.
		if now.Before(rem.FireTime(race.Start)) {
			continue
		}
		s.deliver(ctx, rem, race)
	}
}

// deliver sends one notification and deletes the reminder on success.
// A delivery failure keeps the row for the next tick.
func (s *Reminders) deliver(ctx context.Context, rem domain.Reminder, race domain.Race) {
	lang, tz := locale.English, "UTC"
	if u, err := s.repo.GetUser(ctx, rem.ChatID); err == nil {
		lang, tz = u.Language, u.Timezone
	} else {
		s.log.Warn("user lookup failed, using defaults",
			zap.Int64("chatID", rem.ChatID), zap.Error(err))
	}

	text := locale.Notification(lang, race, rem.RemindBefore, tz)
	if err := s.sender.SendMessage(rem.ChatID, text); err != nil {
		s.log.Error("reminder delivery failed",
			zap.Int64("reminderID", rem.ID),
			zap.Int64("chatID", rem.ChatID),
			zap.String("eventID", rem.EventID),
			zap.Error(err),
		)
		return
	}

	if err := s.repo.DeleteReminder(ctx, rem.ID); err != nil {
		// The message went out but the row survived; it will fire again
		// next tick. At-least-once is the accepted trade-off here.
		s.log.Error("delete after delivery failed",
			zap.Int64("reminderID", rem.ID), zap.Error(err))
		return
	}

	s.log.Info("reminder delivered",
		zap.Int64("reminderID", rem.ID),
		zap.Int64("chatID", rem.ChatID),
		zap.String("eventID", rem.EventID),
		zap.Int("remindBefore", rem.RemindBefore),
	)
}
