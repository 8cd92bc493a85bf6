package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidClockTime is returned for clock strings that are not "HH:MM"
// with hours in [0,23] and minutes in [0,59].
var ErrInvalidClockTime = fmt.Errorf("invalid clock time, expected HH:MM")

// parseClockMinutes converts an "HH:MM" 24-hour clock string to minutes
// since midnight.
func parseClockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return hours*60 + minutes, nil
}

// ComputeHours returns the elapsed hours between two naive "HH:MM" clock
// times, rounded to the nearest tenth of an hour. An end time earlier than
// the start time is treated as crossing midnight exactly once; spans longer
// than 24 hours cannot be expressed.
func ComputeHours(startTime, endTime string) (float64, error) {
	start, err := parseClockMinutes(startTime)
	if err != nil {
		return 0, err
	}

	end, err := parseClockMinutes(endTime)
	if err != nil {
		return 0, err
	}

	diff := end - start
	if diff < 0 {
		diff += 24 * 60
	}

	return math.Round(float64(diff)/60.0*10) / 10, nil
}

// FormatTime12Hour converts an "HH:MM" 24-hour clock time to a 12-hour
// display string with AM/PM suffix. Hour 0 and hour 12 both render as "12".
// Malformed input is returned unchanged.
func FormatTime12Hour(clockTime string) string {
	total, err := parseClockMinutes(clockTime)
	if err != nil {
		return clockTime
	}

	hours := total / 60
	minutes := total % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	displayHour := hours % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minutes, period)
}

// FormatTimeRange renders a start/end pair as "9:00 AM - 5:30 PM".
func FormatTimeRange(startTime, endTime string) string {
	return FormatTime12Hour(startTime) + " - " + FormatTime12Hour(endTime)
}
