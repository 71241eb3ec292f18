package domain

import "time"

// ValidateTZ checks that tz is a valid IANA location and returns its
// canonical name.
func ValidateTZ(tz string) (string, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}

// LocalizeTime renders t in the given timezone as "January 2, 2006 15:04".
// An unknown timezone falls back to UTC rather than failing: a stale tz
// preference must never block a notification.
func LocalizeTime(t time.Time, tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("January 2, 2006 15:04")
}

// LocalizeShort renders t in the given timezone as "January 2, 15:04",
// used for session times inside a schedule entry.
func LocalizeShort(t time.Time, tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("January 2, 15:04")
}
