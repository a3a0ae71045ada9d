package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	tests := []struct {
		name string
		hour int
		want string
	}{
		{"midnight is AM", 0, "2025-11-07_AM"},
		{"morning is AM", 9, "2025-11-07_AM"},
		{"13:59 is AM", 13, "2025-11-07_AM"},
		{"14:00 is PM", 14, "2025-11-07_PM"},
		{"19:59 is PM", 19, "2025-11-07_PM"},
		{"20:00 is EVE", 20, "2025-11-07_EVE"},
		{"23:00 is EVE", 23, "2025-11-07_EVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2025, 11, 7, tt.hour, 0, 0, 0, loc)
			assert.Equal(t, tt.want, ForTime(ts).String())
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	w, err := Parse("2025-11-07_EVE")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-07", w.Date)
	assert.Equal(t, EVE, w.Period)
	assert.Equal(t, "2025-11-07_EVE", w.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2025-11-07", "2025-11-07_XX", "nonsense_AM", "2025-11-07-AM"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			assert.Error(t, err)
		})
	}
}

func TestDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	w, err := Parse("2025-11-07_PM")
	require.NoError(t, err)

	day, err := w.Day(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 7, 0, 0, 0, 0, loc), day)
}
