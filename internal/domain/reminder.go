package domain

import "time"

// Lead times a user may pick, in minutes before race start.
const (
	LeadHour  = 60
	Lead3Hour = 180
	LeadDay   = 1440
)

// LeadTimes lists the allowed remind_before values in menu order.
var LeadTimes = []int{LeadHour, Lead3Hour, LeadDay}

// ValidLeadTime reports whether m is one of the allowed lead times.
func ValidLeadTime(m int) bool {
	for _, v := range LeadTimes {
		if v == m {
			return true
		}
	}
	return false
}

// Reminder is a user's request to be pinged RemindBefore minutes before
// the race identified by EventID starts. At most one reminder exists per
// (UserID, EventID); re-selecting a lead time overwrites it.
type Reminder struct {
	ID           int64
	UserID       int64
	ChatID       int64
	EventID      string
	RemindBefore int // minutes
}

// FireTime is the instant the reminder becomes due, given the race start.
func (r Reminder) FireTime(start time.Time) time.Time {
	return start.Add(-time.Duration(r.RemindBefore) * time.Minute)
}
