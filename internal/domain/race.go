package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Race is one round of a season as supplied by the external feed.
// Start is always UTC; when the feed omits the time of day it defaults
// to midnight UTC. Session times are optional.
type Race struct {
	Season      int
	Round       int
	Name        string
	CircuitID   string
	CircuitName string
	Locality    string
	Country     string
	Start       time.Time
	FP1         *time.Time
	FP2         *time.Time
	FP3         *time.Time
	Sprint      *time.Time
	Qualifying  *time.Time
}

// EventID returns the stable identifier for the race, "{season}_{round}".
// It is the key reminders are registered under.
func (r Race) EventID() string {
	return EventID(r.Season, r.Round)
}

// Location returns "Locality, Country" for display.
func (r Race) Location() string {
	return r.Locality + ", " + r.Country
}

// EventID builds the composite race key used across the feed, the store
// and callback data.
func EventID(season, round int) string {
	return fmt.Sprintf("%d_%d", season, round)
}

// ParseEventID splits "{season}_{round}" back into its parts.
func ParseEventID(id string) (season, round int, err error) {
	parts := strings.SplitN(id, "_", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed event id %q", id)
	}
	season, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed event id %q: %w", id, err)
	}
	round, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed event id %q: %w", id, err)
	}
	return season, round, nil
}
