package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/locale"
)

// Pure message-formatting helpers. Handlers fetch the data, these build
// the text; keeping them side-effect free keeps them testable.

const (
	maxScheduleRaces = 5
	maxStandingsRows = 10
	maxResultRows    = 10
)

func formatSchedule(lang, tz string, season int, races []domain.Race, now time.Time) string {
	year := strconv.Itoa(season)
	if len(races) == 0 {
		return locale.T(lang, "no_races", locale.Vars{"year": year})
	}

	var upcoming, past []domain.Race
	for _, race := range races {
		if race.Start.After(now) {
			upcoming = append(upcoming, race)
		} else {
			past = append(past, race)
		}
	}
	if len(upcoming) > maxScheduleRaces {
		upcoming = upcoming[:maxScheduleRaces]
	}
	if len(past) > maxScheduleRaces {
		past = past[len(past)-maxScheduleRaces:]
	}

	var b strings.Builder
	b.WriteString(locale.T(lang, "schedule_title", locale.Vars{"year": year}))
	b.WriteString("\n\n")

	if len(upcoming) > 0 {
		b.WriteString(locale.T(lang, "upcoming_races", nil))
		b.WriteString("\n\n")
		for _, race := range upcoming {
			writeRaceEntry(&b, lang, tz, race)
		}
	} else {
		b.WriteString(locale.T(lang, "no_upcoming_races", nil))
		b.WriteString("\n\n")
	}

	if len(past) > 0 {
		b.WriteString(locale.T(lang, "past_races", nil))
		b.WriteString("\n\n")
		// Most recent first.
		for i := len(past) - 1; i >= 0; i-- {
			race := past[i]
			b.WriteString(locale.T(lang, "race_round", locale.Vars{
				"round": strconv.Itoa(race.Round), "raceName": race.Name,
			}))
			b.WriteString("\n")
			b.WriteString(locale.T(lang, "race_location", locale.Vars{"location": race.Location()}))
			b.WriteString("\n")
			b.WriteString("📅 " + domain.LocalizeTime(race.Start, tz))
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString(locale.T(lang, "no_past_races", nil))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRaceEntry(b *strings.Builder, lang, tz string, race domain.Race) {
	b.WriteString(locale.T(lang, "race_round", locale.Vars{
		"round": strconv.Itoa(race.Round), "raceName": race.Name,
	}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "race_location", locale.Vars{"location": race.Location()}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "race_circuit", locale.Vars{"circuitName": race.CircuitName}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "race_time", locale.Vars{
		"date": domain.LocalizeTime(race.Start, tz), "timezone": tz,
	}))
	b.WriteString("\n")

	sessions := []struct {
		key string
		at  *time.Time
	}{
		{"fp1", race.FP1},
		{"fp2", race.FP2},
		{"fp3", race.FP3},
		{"sprint", race.Sprint},
		{"qualifying", race.Qualifying},
	}
	for _, s := range sessions {
		if s.at == nil {
			continue
		}
		b.WriteString(locale.T(lang, s.key, locale.Vars{"time": domain.LocalizeShort(*s.at, tz)}))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func formatDriverStandings(lang string, standings []domain.DriverStanding) string {
	var b strings.Builder
	b.WriteString(locale.T(lang, "driver_standings_title", nil))
	b.WriteString("\n\n")
	for i, s := range standings {
		if i == maxStandingsRows {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n   Points: %s | Wins: %d\n   Team: %s\n\n",
			s.Position, s.FullName(), formatPoints(s.Points), s.Wins, s.Team)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatConstructorStandings(lang string, standings []domain.ConstructorStanding) string {
	var b strings.Builder
	b.WriteString(locale.T(lang, "constructor_standings_title", nil))
	b.WriteString("\n\n")
	for _, s := range standings {
		fmt.Fprintf(&b, "%d. %s\n   Points: %s | Wins: %d\n\n",
			s.Position, s.Name, formatPoints(s.Points), s.Wins)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatResults(lang, tz string, race domain.Race, results []domain.RaceResult) string {
	var b strings.Builder
	b.WriteString(locale.T(lang, "results_title", locale.Vars{
		"raceName": race.Name, "date": domain.LocalizeTime(race.Start, tz),
	}))
	b.WriteString("\n\n")
	for i, res := range results {
		if i == maxResultRows {
			break
		}
		finish := res.Time
		if finish == "" {
			finish = "DNF"
		}
		fmt.Fprintf(&b, "%d. %s %s (%s) - %s\n   Points: %s\n\n",
			res.Position, res.GivenName, res.FamilyName, res.Team, finish, formatPoints(res.Points))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatLive(lang, tz string, season int, race domain.Race, top []domain.DriverStanding, now time.Time) string {
	var b strings.Builder
	b.WriteString(locale.T(lang, "next_race_title", locale.Vars{"raceName": race.Name}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "next_race_round", locale.Vars{
		"round": strconv.Itoa(race.Round), "year": strconv.Itoa(season),
	}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "next_race_circuit", locale.Vars{"circuitName": race.CircuitName}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "next_race_location", locale.Vars{"location": race.Location()}))
	b.WriteString("\n")
	b.WriteString(locale.T(lang, "next_race_date", locale.Vars{"date": domain.LocalizeTime(race.Start, tz) + " " + tz}))
	b.WriteString("\n")

	until := race.Start.Sub(now)
	if until > 0 {
		days := int(until.Hours()) / 24
		hours := int(until.Hours()) % 24
		minutes := int(until.Minutes()) % 60
		b.WriteString(locale.T(lang, "countdown", locale.Vars{
			"days":    strconv.Itoa(days),
			"hours":   strconv.Itoa(hours),
			"minutes": strconv.Itoa(minutes),
		}))
		b.WriteString("\n")
	}

	if len(top) > 0 {
		b.WriteString("\n")
		b.WriteString(locale.T(lang, "top_standings", nil))
		b.WriteString("\n")
		for i, s := range top {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "%d. %s - %s points\n", s.Position, s.FullName(), formatPoints(s.Points))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDriverInfo(lang string, s domain.DriverStanding, season int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %d F1 Season\n", season)
	fmt.Fprintf(&b, "🏎️ %s\n", s.FullName())
	fmt.Fprintf(&b, "🏢 %s\n", s.Team)
	if s.PermanentNumber != "" {
		fmt.Fprintf(&b, "🔢 %s\n", s.PermanentNumber)
	}
	if s.Nationality != "" {
		fmt.Fprintf(&b, "🌍 %s\n", s.Nationality)
	}
	fmt.Fprintf(&b, "📊 Position: %d\n", s.Position)
	fmt.Fprintf(&b, "💯 Points: %s\n", formatPoints(s.Points))
	fmt.Fprintf(&b, "🏆 Wins: %d\n", s.Wins)
	if s.URL != "" {
		fmt.Fprintf(&b, "\nℹ️ More info: %s", s.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}

// findDriver searches standings by permanent number or by a
// case-insensitive name fragment.
func findDriver(standings []domain.DriverStanding, query string) (domain.DriverStanding, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.DriverStanding{}, false
	}
	if _, err := strconv.Atoi(query); err == nil {
		for _, s := range standings {
			if s.PermanentNumber == query {
				return s, true
			}
		}
		return domain.DriverStanding{}, false
	}
	q := strings.ToLower(query)
	for _, s := range standings {
		if strings.Contains(strings.ToLower(s.FullName()), q) {
			return s, true
		}
	}
	return domain.DriverStanding{}, false
}

// formatPoints drops the trailing ".0" most totals carry while keeping
// half points ("131.5") intact.
func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
