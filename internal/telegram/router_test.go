package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		in   string
		cmd  string
		args string
	}{
		{"/start", "/start", ""},
		{"/settimezone Europe/Kyiv", "/settimezone", "Europe/Kyiv"},
		{"/driver Lewis Hamilton", "/driver", "Lewis Hamilton"},
		{"/schedule@f1fanbot", "/schedule", ""},
		{"/settimezone@f1fanbot  Asia/Tokyo ", "/settimezone", "Asia/Tokyo"},
		{"hello there", "", "hello there"},
		{"", "", ""},
	}
	for _, tt := range tests {
		cmd, args := splitCommand(tt.in)
		require.Equal(t, tt.cmd, cmd, "input %q", tt.in)
		require.Equal(t, tt.args, args, "input %q", tt.in)
	}
}

func TestParseRemindSet(t *testing.T) {
	eventID, minutes, err := parseRemindSet("remind_set:2025_5:60")
	require.NoError(t, err)
	require.Equal(t, "2025_5", eventID)
	require.Equal(t, 60, minutes)

	eventID, minutes, err = parseRemindSet("remind_set:2025_21:1440")
	require.NoError(t, err)
	require.Equal(t, "2025_21", eventID)
	require.Equal(t, 1440, minutes)
}

func TestParseRemindSetRejects(t *testing.T) {
	cases := []string{
		"remind_set:2025_5",       // no lead time
		"remind_set:2025_5:42",    // lead time not in the allowed set
		"remind_set:2025_5:soon",  // non-numeric lead time
		"remind_set:weird:60",     // broken event id
		"remind_set::60",          // empty event id
		"remind_set:2025_x:180",   // non-numeric round
	}
	for _, data := range cases {
		_, _, err := parseRemindSet(data)
		require.Error(t, err, "payload %q", data)
	}
}
