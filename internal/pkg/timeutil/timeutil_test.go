package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"standard day span", "09:00", "17:00", 8.0},
		{"overnight span", "22:00", "06:00", 8.0},
		{"zero span", "10:00", "10:00", 0.0},
		{"half hour", "18:00", "18:30", 0.5},
		{"rounds to nearest tenth", "09:00", "09:20", 0.3},
		{"just before midnight", "23:30", "00:15", 0.8},
		{"single minute", "12:00", "12:01", 0.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ComputeHours(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestComputeHoursInvalidInput(t *testing.T) {
	invalid := []struct {
		start string
		end   string
	}{
		{"", "17:00"},
		{"09:00", ""},
		{"9", "17:00"},
		{"25:00", "17:00"},
		{"09:00", "17:60"},
		{"09-00", "17:00"},
		{"ab:cd", "17:00"},
	}
	for _, c := range invalid {
		_, err := ComputeHours(c.start, c.end)
		assert.ErrorIs(t, err, ErrInvalidClockTime, "ComputeHours(%q, %q)", c.start, c.end)
	}
}

func TestFormatTime12Hour(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"01:05", "1:05 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:45", "1:45 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatTime12Hour(c.input), "FormatTime12Hour(%q)", c.input)
	}
}

func TestFormatTime12HourMalformedInputPassesThrough(t *testing.T) {
	for _, input := range []string{"", "not-a-time", "24:00", "9"} {
		assert.Equal(t, input, FormatTime12Hour(input))
	}
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "9:00 AM - 5:30 PM", FormatTimeRange("09:00", "17:30"))
	assert.Equal(t, "10:00 PM - 6:00 AM", FormatTimeRange("22:00", "06:00"))
}
