package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/virus84787/f1-fan-bot/internal/domain"
	"github.com/virus84787/f1-fan-bot/internal/locale"
)

func calendar() []domain.Race {
	quali := time.Date(2025, time.May, 3, 20, 0, 0, 0, time.UTC)
	return []domain.Race{
		{
			Season: 2025, Round: 4, Name: "Saudi Arabian Grand Prix",
			CircuitName: "Jeddah Corniche Circuit",
			Locality:    "Jeddah", Country: "Saudi Arabia",
			Start: time.Date(2025, time.April, 20, 17, 0, 0, 0, time.UTC),
		},
		{
			Season: 2025, Round: 5, Name: "Miami Grand Prix",
			CircuitName: "Miami International Autodrome",
			Locality:    "Miami", Country: "USA",
			Start:      time.Date(2025, time.May, 4, 20, 0, 0, 0, time.UTC),
			Qualifying: &quali,
		},
	}
}

func TestFormatSchedule(t *testing.T) {
	now := time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)
	got := formatSchedule(locale.English, "UTC", 2025, calendar(), now)

	require.Contains(t, got, "F1 2025 Season Schedule")
	require.Contains(t, got, "Upcoming Races")
	require.Contains(t, got, "Round 5: Miami Grand Prix")
	require.Contains(t, got, "Miami, USA")
	require.Contains(t, got, "Quali: May 3, 20:00")
	require.Contains(t, got, "Recent Past Races")
	require.Contains(t, got, "Round 4: Saudi Arabian Grand Prix")
	// Upcoming section comes before the past one.
	require.Less(t, strings.Index(got, "Round 5"), strings.Index(got, "Round 4"))
}

func TestFormatScheduleTimezone(t *testing.T) {
	now := time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)
	got := formatSchedule(locale.English, "Europe/Kyiv", 2025, calendar(), now)
	// 20:00 UTC is 23:00 in Kyiv during May.
	require.Contains(t, got, "May 4, 2025 23:00")
}

func TestFormatScheduleEmpty(t *testing.T) {
	got := formatSchedule(locale.English, "UTC", 2025, nil, time.Now())
	require.Contains(t, got, "No race schedule available")
}

func TestFormatScheduleCapsAtFive(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	var races []domain.Race
	for i := 1; i <= 8; i++ {
		races = append(races, domain.Race{
			Season: 2025, Round: i, Name: "Race",
			Start: now.AddDate(0, 0, i*7),
		})
	}
	got := formatSchedule(locale.English, "UTC", 2025, races, now)
	require.Equal(t, maxScheduleRaces, strings.Count(got, "Round "))
}

func TestFormatDriverStandings(t *testing.T) {
	standings := []domain.DriverStanding{
		{Position: 1, GivenName: "Oscar", FamilyName: "Piastri", Points: 131.5, Wins: 4, Team: "McLaren"},
		{Position: 2, GivenName: "Lando", FamilyName: "Norris", Points: 115, Wins: 2, Team: "McLaren"},
	}
	got := formatDriverStandings(locale.English, standings)
	require.Contains(t, got, "Driver Standings")
	require.Contains(t, got, "1. Oscar Piastri")
	require.Contains(t, got, "Points: 131.5 | Wins: 4")
	require.Contains(t, got, "Points: 115 | Wins: 2")
}

func TestFormatResultsDNF(t *testing.T) {
	race := calendar()[0]
	results := []domain.RaceResult{
		{Position: 1, GivenName: "Oscar", FamilyName: "Piastri", Team: "McLaren", Time: "1:21:06.758", Points: 25},
		{Position: 20, GivenName: "Lance", FamilyName: "Stroll", Team: "Aston Martin", Points: 0},
	}
	got := formatResults(locale.English, "UTC", race, results)
	require.Contains(t, got, "Saudi Arabian Grand Prix")
	require.Contains(t, got, "1:21:06.758")
	require.Contains(t, got, "DNF")
}

func TestFormatLiveCountdown(t *testing.T) {
	race := calendar()[1]
	now := race.Start.Add(-(49*time.Hour + 30*time.Minute))
	got := formatLive(locale.English, "UTC", 2025, race, []domain.DriverStanding{
		{Position: 1, GivenName: "Oscar", FamilyName: "Piastri", Points: 131.5},
	}, now)

	require.Contains(t, got, "Next Race: Miami Grand Prix")
	require.Contains(t, got, "Round 5 of the 2025 season")
	require.Contains(t, got, "Countdown: 2 days, 1 hours, 30 minutes")
	require.Contains(t, got, "1. Oscar Piastri - 131.5 points")
}

func TestFindDriver(t *testing.T) {
	standings := []domain.DriverStanding{
		{GivenName: "Lewis", FamilyName: "Hamilton", PermanentNumber: "44"},
		{GivenName: "Oscar", FamilyName: "Piastri", PermanentNumber: "81"},
	}

	s, ok := findDriver(standings, "hamilton")
	require.True(t, ok)
	require.Equal(t, "Lewis", s.GivenName)

	s, ok = findDriver(standings, "81")
	require.True(t, ok)
	require.Equal(t, "Oscar", s.GivenName)

	_, ok = findDriver(standings, "verstappen")
	require.False(t, ok)

	_, ok = findDriver(standings, "")
	require.False(t, ok)
}

func TestFormatPoints(t *testing.T) {
	require.Equal(t, "25", formatPoints(25))
	require.Equal(t, "131.5", formatPoints(131.5))
	require.Equal(t, "0", formatPoints(0))
}
