package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/locale"
)

// Reminder flows. The whole interaction state lives in callback data:
// /remind -> race keyboard (remind_race:<eventID>)
//         -> lead time keyboard (remind_set:<eventID>:<minutes>)
//         -> upsert.

const maxRemindChoices = 10

func (r *Router) handleRemind(ctx context.Context, userID, chatID int64) {
	lang, _ := r.prefs(ctx, chatID)

	if err := r.repo.EnsureUser(ctx, userID, chatID); err != nil {
		r.log.Error("register user failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_reminder", nil))
		return
	}

	races, err := r.upcomingRaces(ctx)
	if err != nil {
		r.log.Error("schedule unavailable for remind", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_schedule", nil))
		return
	}
	if len(races) == 0 {
		r.sendText(chatID, locale.T(lang, "remind_no_upcoming", nil))
		return
	}

	msg := tgbotapi.NewMessage(chatID, locale.T(lang, "remind_pick_race", nil))
	msg.ReplyMarkup = raceChoiceKeyboard(races)
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

// upcomingRaces lists not-yet-started races, feed first, cache second.
func (r *Router) upcomingRaces(ctx context.Context) ([]domain.Race, error) {
	races, err := r.feed.Schedule(ctx, r.season)
	if err != nil {
		races, err = r.repo.ListRaces(ctx, r.season)
		if err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	var upcoming []domain.Race
	for _, race := range races {
		if race.Start.After(now) {
			upcoming = append(upcoming, race)
		}
	}
	if len(upcoming) > maxRemindChoices {
		upcoming = upcoming[:maxRemindChoices]
	}
	return upcoming, nil
}

func (r *Router) handleRemindRaceCallback(ctx context.Context, chatID int64, data, cbID string) {
	r.answerCallback(cbID)
	lang, _ := r.prefs(ctx, chatID)

	eventID := data[len(cbRemindRace):]
	race, err := r.raceByEventID(ctx, eventID)
	if err != nil {
		r.log.Warn("race lookup for reminder failed", zap.String("eventID", eventID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_reminder", nil))
		return
	}

	msg := tgbotapi.NewMessage(chatID, locale.T(lang, "remind_pick_lead", locale.Vars{"raceName": race.Name}))
	msg.ReplyMarkup = leadTimeKeyboard(lang, eventID)
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (r *Router) handleRemindSetCallback(ctx context.Context, userID, chatID int64, data, cbID string) {
	r.answerCallback(cbID)
	lang, _ := r.prefs(ctx, chatID)

	eventID, minutes, err := parseRemindSet(data)
	if err != nil {
		r.log.Warn("malformed reminder callback", zap.String("data", data), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_reminder", nil))
		return
	}

	race, err := r.raceByEventID(ctx, eventID)
	if err != nil {
		r.log.Warn("race lookup for reminder failed", zap.String("eventID", eventID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_reminder", nil))
		return
	}

	if err := r.repo.EnsureUser(ctx, userID, chatID); err != nil {
		r.log.Error("register user failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_reminder", nil))
		return
	}
	id, err := r.repo.UpsertReminder(ctx, userID, chatID, eventID, minutes)
	if err != nil {
		r.log.Error("upsert reminder failed",
			zap.Int64("chatID", chatID), zap.String("eventID", eventID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_reminder", nil))
		return
	}
	r.log.Info("reminder saved",
		zap.Int64("reminderID", id),
		zap.Int64("userID", userID),
		zap.String("eventID", eventID),
		zap.Int("remindBefore", minutes),
	)
	r.sendText(chatID, locale.T(lang, "remind_saved", locale.Vars{
		"raceName": race.Name,
		"lead":     locale.LeadTimeLabel(lang, minutes),
	}))
}

func (r *Router) handleListReminders(ctx context.Context, userID, chatID int64) {
	lang, _ := r.prefs(ctx, chatID)

	reminders, err := r.repo.ListRemindersByUser(ctx, userID)
	if err != nil {
		r.log.Error("list reminders failed", zap.Int64("userID", userID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_general", nil))
		return
	}
	if len(reminders) == 0 {
		r.sendText(chatID, locale.T(lang, "remind_list_empty", nil))
		return
	}

	// Race names come from wherever a calendar is available; a bare
	// event id is still usable if neither source has it.
	names := map[string]string{}
	if races, err := r.upcomingRaces(ctx); err == nil {
		for _, race := range races {
			names[race.EventID()] = race.Name
		}
	}

	msg := tgbotapi.NewMessage(chatID, locale.T(lang, "remind_list_title", nil))
	msg.ReplyMarkup = reminderListKeyboard(lang, reminders, names)
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (r *Router) handleRemindDelCallback(ctx context.Context, userID, chatID int64, data, cbID string) {
	r.answerCallback(cbID)
	lang, _ := r.prefs(ctx, chatID)

	id, err := strconv.ParseInt(data[len(cbRemindDel):], 10, 64)
	if err != nil {
		r.log.Warn("malformed delete callback", zap.String("data", data))
		return
	}
	// Scoped to the calling user so ids from other chats are harmless.
	if err := r.repo.DeleteReminderByUser(ctx, id, userID); err != nil {
		r.log.Error("delete reminder failed", zap.Int64("reminderID", id), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_general", nil))
		return
	}
	r.sendText(chatID, locale.T(lang, "remind_deleted", nil))
}

// raceByEventID resolves an event id against the current calendar,
// falling back to the cache when the feed is down.
func (r *Router) raceByEventID(ctx context.Context, eventID string) (domain.Race, error) {
	races, err := r.feed.Schedule(ctx, r.season)
	if err != nil {
		races, err = r.repo.ListRaces(ctx, r.season)
		if err != nil {
			return domain.Race{}, err
		}
	}
	for _, race := range races {
		if race.EventID() == eventID {
			return race, nil
		}
	}
	return domain.Race{}, domain.ErrNotFound
}

// parseRemindSet splits "remind_set:<eventID>:<minutes>" and validates
// the lead time against the allowed set.
func parseRemindSet(data string) (eventID string, minutes int, err error) {
	payload := strings.TrimPrefix(data, cbRemindSet)
	idx := strings.LastIndex(payload, ":")
	if idx <= 0 {
		return "", 0, fmt.Errorf("malformed payload %q", payload)
	}
	eventID = payload[:idx]
	minutes, err = strconv.Atoi(payload[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed lead time in %q", payload)
	}
	if !domain.ValidLeadTime(minutes) {
		return "", 0, fmt.Errorf("lead time %d not allowed", minutes)
	}
	if _, _, err := domain.ParseEventID(eventID); err != nil {
		return "", 0, err
	}
	return eventID, minutes, nil
}
