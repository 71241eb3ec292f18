package domain

import "time"

// User represents a registered chat with its display preferences.
type User struct {
	ID        int64
	ChatID    int64
	Timezone  string // IANA name, "UTC" by default
	Language  string // "en" or "uk"
	CreatedAt time.Time
}
