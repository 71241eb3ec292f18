package telegram

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/ergast"
	"github.com/virus84787/f1-fan-bot/internal/locale"
)

// prefs returns the chat's language and timezone, defaulting to en/UTC
// for unregistered chats.
func (r *Router) prefs(ctx context.Context, chatID int64) (lang, tz string) {
	lang, tz = locale.English, "UTC"
	u, err := r.repo.GetUser(ctx, chatID)
	if err != nil {
		return lang, tz
	}
	if locale.Valid(u.Language) {
		lang = u.Language
	}
	if u.Timezone != "" {
		tz = u.Timezone
	}
	return lang, tz
}

func (r *Router) handleStart(ctx context.Context, userID, chatID int64) {
	if err := r.repo.EnsureUser(ctx, userID, chatID); err != nil {
		r.log.Error("register user failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(locale.English, "error_general", nil))
		return
	}
	r.log.Info("user registered", zap.Int64("userID", userID), zap.Int64("chatID", chatID))

	lang, _ := r.prefs(ctx, chatID)
	msg := tgbotapi.NewMessage(chatID, locale.T(lang, "welcome", nil))
	msg.ReplyMarkup = mainMenuKeyboard()
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (r *Router) handleSchedule(ctx context.Context, chatID int64) {
	lang, tz := r.prefs(ctx, chatID)

	races, err := r.feed.Schedule(ctx, r.season)
	if err != nil {
		// Serve the cache warmed by the refresh job before giving up.
		races, err = r.repo.ListRaces(ctx, r.season)
		if err != nil || len(races) == 0 {
			r.log.Error("schedule unavailable", zap.Int64("chatID", chatID), zap.Error(err))
			r.sendText(chatID, locale.T(lang, "error_schedule", nil))
			return
		}
		r.log.Warn("serving schedule from cache", zap.Int64("chatID", chatID))
	}

	r.sendText(chatID, formatSchedule(lang, tz, r.season, races, time.Now().UTC()))
}

func (r *Router) handleDriverStandings(ctx context.Context, chatID int64) {
	lang, _ := r.prefs(ctx, chatID)

	standings, err := r.feed.DriverStandings(ctx, r.season)
	if err != nil {
		standings, err = r.repo.ListDriverStandings(ctx, r.season)
		if err != nil || len(standings) == 0 {
			r.log.Error("driver standings unavailable", zap.Int64("chatID", chatID), zap.Error(err))
			r.sendText(chatID, locale.T(lang, "error_driver_standings", nil))
			return
		}
		r.log.Warn("serving driver standings from cache", zap.Int64("chatID", chatID))
	}
	r.sendText(chatID, formatDriverStandings(lang, standings))
}

func (r *Router) handleConstructorStandings(ctx context.Context, chatID int64) {
	lang, _ := r.prefs(ctx, chatID)

	standings, err := r.feed.ConstructorStandings(ctx, r.season)
	if err != nil {
		standings, err = r.repo.ListConstructorStandings(ctx, r.season)
		if err != nil || len(standings) == 0 {
			r.log.Error("constructor standings unavailable", zap.Int64("chatID", chatID), zap.Error(err))
			r.sendText(chatID, locale.T(lang, "error_constructor_standings", nil))
			return
		}
		r.log.Warn("serving constructor standings from cache", zap.Int64("chatID", chatID))
	}
	r.sendText(chatID, formatConstructorStandings(lang, standings))
}

func (r *Router) handleSetTimezone(ctx context.Context, userID, chatID int64, args string) {
	lang, _ := r.prefs(ctx, chatID)

	tz, err := domain.ValidateTZ(args)
	if err != nil || args == "" {
		r.sendText(chatID, locale.T(lang, "timezone_invalid", nil))
		return
	}
	if err := r.repo.EnsureUser(ctx, userID, chatID); err != nil {
		r.log.Error("register user failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_timezone", nil))
		return
	}
	if err := r.repo.SetTimezone(ctx, chatID, tz); err != nil {
		r.log.Error("set timezone failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_timezone", nil))
		return
	}
	r.log.Info("timezone updated", zap.Int64("chatID", chatID), zap.String("tz", tz))
	r.sendText(chatID, locale.T(lang, "timezone_updated", locale.Vars{"timezone": tz}))
}

func (r *Router) handleResults(ctx context.Context, chatID int64) {
	lang, tz := r.prefs(ctx, chatID)

	race, results, err := r.feed.LastRaceResults(ctx)
	if err != nil {
		r.log.Error("results unavailable", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_results", nil))
		return
	}
	if len(results) == 0 {
		r.sendText(chatID, locale.T(lang, "no_results", nil))
		return
	}
	r.sendText(chatID, formatResults(lang, tz, race, results))
}

func (r *Router) handleLive(ctx context.Context, chatID int64) {
	lang, tz := r.prefs(ctx, chatID)

	race, err := ergast.NextRace(ctx, r.feed, r.season, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.sendText(chatID, locale.T(lang, "no_upcoming_race", nil))
			return
		}
		r.log.Error("next race unavailable", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_live", nil))
		return
	}

	// Standings are garnish here; show the race even without them.
	top, err := r.feed.DriverStandings(ctx, r.season)
	if err != nil {
		r.log.Warn("standings unavailable for live view", zap.Error(err))
		top = nil
	}
	r.sendText(chatID, formatLive(lang, tz, r.season, race, top, time.Now().UTC()))
}

func (r *Router) handleDriverInfo(ctx context.Context, chatID int64, query string) {
	lang, _ := r.prefs(ctx, chatID)

	if query == "" {
		r.sendText(chatID, locale.T(lang, "driver_info_usage", nil))
		return
	}
	standings, err := r.feed.DriverStandings(ctx, r.season)
	if err != nil {
		r.log.Error("driver info unavailable", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_driver_info", nil))
		return
	}
	s, ok := findDriver(standings, query)
	if !ok {
		r.sendText(chatID, locale.T(lang, "driver_info_not_found", nil))
		return
	}
	r.sendText(chatID, formatDriverInfo(lang, s, r.season))
}

func (r *Router) handleLanguage(ctx context.Context, chatID int64, args string) {
	lang, _ := r.prefs(ctx, chatID)

	if args != "" {
		// "/language uk" works like the dedicated commands.
		if locale.Valid(args) {
			r.handleSetLanguage(ctx, 0, chatID, args)
			return
		}
		r.sendText(chatID, locale.T(lang, "language_invalid", nil))
		return
	}

	text := locale.T(lang, "language_title", nil) + "\n" +
		locale.T(lang, "language_current", locale.Vars{"language": locale.Name(lang)})
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = languageKeyboard()
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (r *Router) handleSetLanguage(ctx context.Context, userID, chatID int64, code string) {
	lang, _ := r.prefs(ctx, chatID)
	if !locale.Valid(code) {
		r.sendText(chatID, locale.T(lang, "language_invalid", nil))
		return
	}
	if userID != 0 {
		if err := r.repo.EnsureUser(ctx, userID, chatID); err != nil {
			r.log.Error("register user failed", zap.Int64("chatID", chatID), zap.Error(err))
		}
	}
	if err := r.repo.SetLanguage(ctx, chatID, code); err != nil {
		r.log.Error("set language failed", zap.Int64("chatID", chatID), zap.Error(err))
		r.sendText(chatID, locale.T(lang, "error_general", nil))
		return
	}
	r.sendText(chatID, locale.T(code, "language_set", nil))
}

func (r *Router) handleLangCallback(ctx context.Context, userID, chatID int64, data, cbID string) {
	r.answerCallback(cbID)
	code := data[len(cbLang):]
	r.handleSetLanguage(ctx, userID, chatID, code)
}
