package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/locale"
)

// mainMenuKeyboard offers the most-used commands as a reply keyboard.
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/schedule"),
			tgbotapi.NewKeyboardButton("/live"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/remind"),
			tgbotapi.NewKeyboardButton("/reminders"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/driverstandings"),
			tgbotapi.NewKeyboardButton("/results"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// raceChoiceKeyboard lists upcoming races one per row for /remind.
func raceChoiceKeyboard(races []domain.Race) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(races))
	for _, race := range races {
		label := fmt.Sprintf("R%d %s", race.Round, race.Name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbRemindRace+race.EventID()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// leadTimeKeyboard offers the allowed lead times for one race.
func leadTimeKeyboard(lang, eventID string) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(domain.LeadTimes))
	for _, minutes := range domain.LeadTimes {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			locale.LeadTimeLabel(lang, minutes),
			fmt.Sprintf("%s%s:%d", cbRemindSet, eventID, minutes),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

// reminderListKeyboard renders one delete button per existing reminder.
func reminderListKeyboard(lang string, reminders []domain.Reminder, raceNames map[string]string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reminders))
	for _, rem := range reminders {
		name := raceNames[rem.EventID]
		if name == "" {
			name = rem.EventID
		}
		label := "🗑 " + locale.T(lang, "remind_list_entry", locale.Vars{
			"raceName": name,
			"lead":     locale.LeadTimeLabel(lang, rem.RemindBefore),
		})
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbRemindDel+strconv.FormatInt(rem.ID, 10)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// languageKeyboard offers the supported languages.
func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 "+locale.Name(locale.English), cbLang+locale.English),
			tgbotapi.NewInlineKeyboardButtonData("🇺🇦 "+locale.Name(locale.Ukrainian), cbLang+locale.Ukrainian),
		),
	)
}
