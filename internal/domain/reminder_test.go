package domain

import (
	"testing"
	"time"
)

func TestFireTime(t *testing.T) {
	start := time.Date(2025, time.May, 4, 14, 0, 0, 0, time.UTC)
	r := Reminder{RemindBefore: LeadHour}
	want := time.Date(2025, time.May, 4, 13, 0, 0, 0, time.UTC)
	if got := r.FireTime(start); !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	r.RemindBefore = LeadDay
	want = time.Date(2025, time.May, 3, 14, 0, 0, 0, time.UTC)
	if got := r.FireTime(start); !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestValidLeadTime(t *testing.T) {
	for _, m := range LeadTimes {
		if !ValidLeadTime(m) {
			t.Fatalf("lead time %d should be valid", m)
		}
	}
	for _, m := range []int{0, 30, 90, 720, -60} {
		if ValidLeadTime(m) {
			t.Fatalf("lead time %d should be invalid", m)
		}
	}
}

func TestEventIDRoundTrip(t *testing.T) {
	id := EventID(2025, 5)
	if id != "2025_5" {
		t.Fatalf("want 2025_5, got %s", id)
	}
	season, round, err := ParseEventID(id)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if season != 2025 || round != 5 {
		t.Fatalf("want 2025/5, got %d/%d", season, round)
	}
}

func TestParseEventIDRejectsGarbage(t *testing.T) {
	for _, id := range []string{"", "2025", "2025-5", "x_y", "2025_r1"} {
		if _, _, err := ParseEventID(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}
