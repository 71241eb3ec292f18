package ergast

import (
	"strconv"
	"time"

	"github.com/virus84787/f1-fan-bot/internal/domain"
)

// Wire types for the Ergast-compatible JSON API. Every numeric field is
// a string on the wire; conversion to domain types happens here.

type envelope struct {
	MRData struct {
		RaceTable struct {
			Races []wireRace `json:"Races"`
		} `json:"RaceTable"`
		StandingsTable struct {
			StandingsLists []struct {
				DriverStandings      []wireDriverStanding      `json:"DriverStandings"`
				ConstructorStandings []wireConstructorStanding `json:"ConstructorStandings"`
			} `json:"StandingsLists"`
		} `json:"StandingsTable"`
	} `json:"MRData"`
}

type wireSession struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type wireRace struct {
	Season   string `json:"season"`
	Round    string `json:"round"`
	RaceName string `json:"raceName"`
	Circuit  struct {
		CircuitID   string `json:"circuitId"`
		CircuitName string `json:"circuitName"`
		Location    struct {
			Locality string `json:"locality"`
			Country  string `json:"country"`
		} `json:"Location"`
	} `json:"Circuit"`
	Date           string       `json:"date"`
	Time           string       `json:"time"`
	FirstPractice  *wireSession `json:"FirstPractice"`
	SecondPractice *wireSession `json:"SecondPractice"`
	ThirdPractice  *wireSession `json:"ThirdPractice"`
	Qualifying     *wireSession `json:"Qualifying"`
	Sprint         *wireSession `json:"Sprint"`
	Results        []wireResult `json:"Results"`
}

type wireDriver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	Nationality     string `json:"nationality"`
	URL             string `json:"url"`
}

type wireConstructor struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
}

type wireDriverStanding struct {
	Position     string            `json:"position"`
	Points       string            `json:"points"`
	Wins         string            `json:"wins"`
	Driver       wireDriver        `json:"Driver"`
	Constructors []wireConstructor `json:"Constructors"`
}

type wireConstructorStanding struct {
	Position    string          `json:"position"`
	Points      string          `json:"points"`
	Wins        string          `json:"wins"`
	Constructor wireConstructor `json:"Constructor"`
}

type wireResult struct {
	Position    string          `json:"position"`
	Points      string          `json:"points"`
	Driver      wireDriver      `json:"Driver"`
	Constructor wireConstructor `json:"Constructor"`
	Time        *struct {
		Time string `json:"time"`
	} `json:"Time"`
}

// parseStart combines the feed's date and optional time fields into a
// UTC instant. A missing time defaults to midnight UTC.
func parseStart(date, clock string) (time.Time, error) {
	if clock == "" {
		return time.Parse("2006-01-02", date)
	}
	return time.Parse("2006-01-02T15:04:05Z", date+"T"+clock)
}

func parseSession(s *wireSession) *time.Time {
	if s == nil {
		return nil
	}
	t, err := parseStart(s.Date, s.Time)
	if err != nil {
		return nil
	}
	return &t
}

func (w wireRace) toDomain() (domain.Race, error) {
	start, err := parseStart(w.Date, w.Time)
	if err != nil {
		return domain.Race{}, err
	}
	season, _ := strconv.Atoi(w.Season)
	round, _ := strconv.Atoi(w.Round)
	return domain.Race{
		Season:      season,
		Round:       round,
		Name:        w.RaceName,
		CircuitID:   w.Circuit.CircuitID,
		CircuitName: w.Circuit.CircuitName,
		Locality:    w.Circuit.Location.Locality,
		Country:     w.Circuit.Location.Country,
		Start:       start,
		FP1:         parseSession(w.FirstPractice),
		FP2:         parseSession(w.SecondPractice),
		FP3:         parseSession(w.ThirdPractice),
		Sprint:      parseSession(w.Sprint),
		Qualifying:  parseSession(w.Qualifying),
	}, nil
}

func (w wireDriverStanding) toDomain() domain.DriverStanding {
	pos, _ := strconv.Atoi(w.Position)
	pts, _ := strconv.ParseFloat(w.Points, 64)
	wins, _ := strconv.Atoi(w.Wins)
	team := ""
	if len(w.Constructors) > 0 {
		team = w.Constructors[0].Name
	}
	return domain.DriverStanding{
		DriverID:        w.Driver.DriverID,
		Position:        pos,
		GivenName:       w.Driver.GivenName,
		FamilyName:      w.Driver.FamilyName,
		PermanentNumber: w.Driver.PermanentNumber,
		Nationality:     w.Driver.Nationality,
		URL:             w.Driver.URL,
		Points:          pts,
		Wins:            wins,
		Team:            team,
	}
}

func (w wireConstructorStanding) toDomain() domain.ConstructorStanding {
	pos, _ := strconv.Atoi(w.Position)
	pts, _ := strconv.ParseFloat(w.Points, 64)
	wins, _ := strconv.Atoi(w.Wins)
	return domain.ConstructorStanding{
		ConstructorID: w.Constructor.ConstructorID,
		Position:      pos,
		Name:          w.Constructor.Name,
		Points:        pts,
		Wins:          wins,
	}
}

func (w wireResult) toDomain() domain.RaceResult {
	pos, _ := strconv.Atoi(w.Position)
	pts, _ := strconv.ParseFloat(w.Points, 64)
	finish := ""
	if w.Time != nil {
		finish = w.Time.Time
	}
	return domain.RaceResult{
		Position:   pos,
		GivenName:  w.Driver.GivenName,
		FamilyName: w.Driver.FamilyName,
		Team:       w.Constructor.Name,
		Time:       finish,
		Points:     pts,
	}
}
