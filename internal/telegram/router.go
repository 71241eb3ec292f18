package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/ergast"
	"github.com/virus84787/f1-fan-bot/internal/store"
)

// Callback data prefixes. All interaction state travels inside the
// callback payload itself, so the router holds no per-chat session state.
const (
	cbRemindRace = "remind_race:" // remind_race:<eventID>
	cbRemindSet  = "remind_set:"  // remind_set:<eventID>:<minutes>
	cbRemindDel  = "remind_del:"  // remind_del:<reminderID>
	cbLang       = "lang:"        // lang:<code>
)

// Router wires Telegram updates to handlers.
type Router struct {
	bot    *tgbotapi.BotAPI
	log    *zap.Logger
	repo   store.Repo
	feed   ergast.Feed
	season int
}

// NewRouter creates a new Telegram router.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, repo store.Repo, feed ergast.Feed, season int) *Router {
	return &Router{
		bot:    bot,
		log:    log,
		repo:   repo,
		feed:   feed,
		season: season,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		msg := upd.Message
		if msg.From == nil {
			return
		}
		chatID := msg.Chat.ID
		userID := msg.From.ID
		text := strings.TrimSpace(msg.Text)
		cmd, args := splitCommand(text)

		switch cmd {
		case "/start":
			r.handleStart(ctx, userID, chatID)
		case "/schedule":
			r.handleSchedule(ctx, chatID)
		case "/driverstandings":
			r.handleDriverStandings(ctx, chatID)
		case "/constructorstandings":
			r.handleConstructorStandings(ctx, chatID)
		case "/settimezone":
			r.handleSetTimezone(ctx, userID, chatID, args)
		case "/results":
			r.handleResults(ctx, chatID)
		case "/live":
			r.handleLive(ctx, chatID)
		case "/driver":
			r.handleDriverInfo(ctx, chatID, args)
		case "/remind":
			r.handleRemind(ctx, userID, chatID)
		case "/reminders":
			r.handleListReminders(ctx, userID, chatID)
		case "/language":
			r.handleLanguage(ctx, chatID, args)
		case "/language_en":
			r.handleSetLanguage(ctx, userID, chatID, "en")
		case "/language_uk":
			r.handleSetLanguage(ctx, userID, chatID, "uk")
		default:
			// Not a known command; nothing conversational to do.
		}
		return
	}

	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		if cb.Message == nil || cb.From == nil {
			return
		}
		chatID := cb.Message.Chat.ID
		userID := cb.From.ID
		data := cb.Data

		switch {
		case strings.HasPrefix(data, cbRemindRace):
			r.handleRemindRaceCallback(ctx, chatID, data, cb.ID)
		case strings.HasPrefix(data, cbRemindSet):
			r.handleRemindSetCallback(ctx, userID, chatID, data, cb.ID)
		case strings.HasPrefix(data, cbRemindDel):
			r.handleRemindDelCallback(ctx, userID, chatID, data, cb.ID)
		case strings.HasPrefix(data, cbLang):
			r.handleLangCallback(ctx, userID, chatID, data, cb.ID)
		default:
			// Unknown callback, ignore silently.
		}
	}
}

// splitCommand separates "/cmd arg..." into the command (bot-mention
// stripped) and the argument remainder.
func splitCommand(text string) (cmd, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd, args, _ = strings.Cut(text, " ")
	// "/schedule@f1fanbot" arrives in group chats.
	cmd, _, _ = strings.Cut(cmd, "@")
	return cmd, strings.TrimSpace(args)
}

// SendMessage sends a plain text message to the given chat. This makes
// Router satisfy scheduler.Sender.
func (r *Router) SendMessage(chatID int64, text string) error {
	if _, err := r.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("%w: chat %d: %v", domain.ErrDeliveryFailed, chatID, err)
	}
	return nil
}

func (r *Router) sendText(chatID int64, text string) {
	if err := r.SendMessage(chatID, text); err != nil {
		r.log.Error("send failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}

func (r *Router) answerCallback(id string) {
	if _, err := r.bot.Request(tgbotapi.NewCallback(id, "")); err != nil {
		r.log.Warn("callback answer failed", zap.Error(err))
	}
}
