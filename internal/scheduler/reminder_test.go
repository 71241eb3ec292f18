package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

type stubFeed struct {
	races []domain.Race
	err   error
}

func (f *stubFeed) Schedule(context.Context, int) ([]domain.Race, error) {
	return f.races, f.err
}

type stubRepo struct {
	reminders []domain.Reminder
	users     map[int64]*domain.User
	listErr   error
	deleteErr error
	deleted   []int64
}

func (r *stubRepo) ListAllReminders(context.Context) ([]domain.Reminder, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	// Return only rows not yet deleted, like a real table would.
	var out []domain.Reminder
	for _, rem := range r.reminders {
		if !r.isDeleted(rem.ID) {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *stubRepo) isDeleted(id int64) bool {
	for _, d := range r.deleted {
		if d == id {
			return true
		}
	}
	return false
}

func (r *stubRepo) DeleteReminder(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubRepo) GetUser(_ context.Context, chatID int64) (*domain.User, error) {
	if u, ok := r.users[chatID]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

type sent struct {
	chatID int64
	text   string
}

type stubSender struct {
	sent     []sent
	failures int // fail this many leading calls
	calls    int
}

func (s *stubSender) SendMessage(chatID int64, text string) error {
	s.calls++
	if s.calls <= s.failures {
		return fmt.Errorf("%w: channel rejected", domain.ErrDeliveryFailed)
	}
	s.sent = append(s.sent, sent{chatID: chatID, text: text})
	return nil
}

func newTestScheduler(feed Feed, repo ReminderSource, sender Sender, now time.Time) *Reminders {
	s := NewReminders(feed, repo, sender, zap.NewNop(), 2025, time.Minute)
	s.now = func() time.Time { return now }
	return s
}

func miamiAt(start time.Time) domain.Race {
	return domain.Race{
		Season: 2025, Round: 5, Name: "Miami Grand Prix",
		Locality: "Miami", Country: "USA", Start: start,
	}
}

func TestTick_WindowCorrectness(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 0, 0, time.UTC)

	// All reminders use a 60 minute lead; the race start offsets place
	// the fire times 30s past, 30s ahead and 90s past relative to now.
	feed := &stubFeed{races: []domain.Race{
		miamiAt(now.Add(59*time.Minute + 30*time.Second)),                         // fire = now-30s: due
		{Season: 2025, Round: 6, Name: "B", Start: now.Add(60*time.Minute + 30*time.Second)}, // fire = now+30s: not due
		{Season: 2025, Round: 7, Name: "C", Start: now.Add(58*time.Minute + 30*time.Second)}, // fire = now-90s: missed window, still due
	}}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
		{ID: 2, UserID: 7, ChatID: 100, EventID: "2025_6", RemindBefore: 60},
		{ID: 3, UserID: 7, ChatID: 100, EventID: "2025_7", RemindBefore: 60},
	}}
	sender := &stubSender{}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())

	require.Len(t, sender.sent, 2)
	require.ElementsMatch(t, []int64{1, 3}, repo.deleted)
}

func TestTick_DeleteAfterDeliver(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 5, 0, time.UTC)
	feed := &stubFeed{races: []domain.Race{miamiAt(time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC))}}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
	}}
	sender := &stubSender{}

	s := newTestScheduler(feed, repo, sender, now)
	s.tick(context.Background())

	require.Len(t, sender.sent, 1)
	require.Equal(t, []int64{1}, repo.deleted)

	// A later tick finds no reminder for that event.
	s.now = func() time.Time { return now.Add(time.Minute) }
	s.tick(context.Background())
	require.Len(t, sender.sent, 1)
}

func TestTick_FailureIsolation(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 5, 0, time.UTC)
	start := time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC)
	feed := &stubFeed{races: []domain.Race{miamiAt(start)}}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
		{ID: 2, UserID: 8, ChatID: 200, EventID: "2025_5", RemindBefore: 60},
	}}
	// First delivery (A) fails, second (B) succeeds.
	sender := &stubSender{failures: 1}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())

	require.Len(t, sender.sent, 1)
	require.Equal(t, int64(200), sender.sent[0].chatID)
	require.Equal(t, []int64{2}, repo.deleted)
}

func TestTick_RetryUntilDelivered(t *testing.T) {
	start := time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC)
	feed := &stubFeed{races: []domain.Race{miamiAt(start)}}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
	}}
	sender := &stubSender{failures: 1}

	s := newTestScheduler(feed, repo, sender, time.Date(2025, time.May, 4, 13, 0, 5, 0, time.UTC))

	// First tick: delivery fails, row persists.
	s.tick(context.Background())
	require.Empty(t, sender.sent)
	require.Empty(t, repo.deleted)

	// Next tick, one minute later: retry succeeds, row deleted.
	s.now = func() time.Time { return time.Date(2025, time.May, 4, 13, 1, 5, 0, time.UTC) }
	s.tick(context.Background())
	require.Len(t, sender.sent, 1)
	require.Equal(t, []int64{1}, repo.deleted)

	// Third tick: no further attempt.
	s.now = func() time.Time { return time.Date(2025, time.May, 4, 13, 2, 5, 0, time.UTC) }
	s.tick(context.Background())
	require.Equal(t, 2, sender.calls)
}

func TestTick_FeedFailureAbortsTick(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 5, 0, time.UTC)
	feed := &stubFeed{err: fmt.Errorf("%w: api down", domain.ErrDataUnavailable)}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
	}}
	sender := &stubSender{}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())

	require.Empty(t, sender.sent)
	require.Empty(t, repo.deleted)
}

func TestTick_ReminderScanFailureAbortsTick(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 5, 0, time.UTC)
	feed := &stubFeed{races: []domain.Race{miamiAt(time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC))}}
	repo := &stubRepo{listErr: errors.New("db locked")}
	sender := &stubSender{}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())
	require.Empty(t, sender.sent)
}

func TestTick_StartedRaceNeverFires(t *testing.T) {
	now := time.Date(2025, time.May, 4, 15, 0, 0, 0, time.UTC)
	// Race started an hour ago; its reminder stays dormant, not deleted.
	feed := &stubFeed{races: []domain.Race{miamiAt(time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC))}}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
	}}
	sender := &stubSender{}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())

	require.Empty(t, sender.sent)
	require.Empty(t, repo.deleted)
}

func TestTick_UnknownEventStaysDormant(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 0, 0, time.UTC)
	feed := &stubFeed{races: []domain.Race{miamiAt(now.Add(2 * time.Hour))}}
	repo := &stubRepo{reminders: []domain.Reminder{
		{ID: 9, UserID: 7, ChatID: 100, EventID: "2024_22", RemindBefore: 60},
	}}
	sender := &stubSender{}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())
	require.Empty(t, sender.sent)
	require.Empty(t, repo.deleted)
}

func TestTick_NotificationLocalized(t *testing.T) {
	now := time.Date(2025, time.May, 4, 13, 0, 5, 0, time.UTC)
	feed := &stubFeed{races: []domain.Race{miamiAt(time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC))}}
	repo := &stubRepo{
		reminders: []domain.Reminder{
			{ID: 1, UserID: 7, ChatID: 100, EventID: "2025_5", RemindBefore: 60},
		},
		users: map[int64]*domain.User{
			100: {ID: 7, ChatID: 100, Timezone: "Europe/Kyiv", Language: "uk"},
		},
	}
	sender := &stubSender{}

	newTestScheduler(feed, repo, sender, now).tick(context.Background())

	require.Len(t, sender.sent, 1)
	text := sender.sent[0].text
	require.Contains(t, text, "Miami Grand Prix")
	require.Contains(t, text, "1 годину")
	// 14:00 UTC is 17:00 in Kyiv (EEST).
	require.Contains(t, text, "17:00")
}
