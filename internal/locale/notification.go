package locale

import (
	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// Notification renders the reminder message delivered to a user: race
// name, human lead time, location and the start time localized to the
// user's timezone.
func Notification(lang string, race domain.Race, leadMinutes int, tz string) string {
	return T(lang, "notification", Vars{
		"raceName": race.Name,
		"lead":     LeadTimeLabel(lang, leadMinutes),
		"location": race.Location(),
		"start":    domain.LocalizeTime(race.Start, tz),
	})
}
