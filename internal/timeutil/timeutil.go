// Package timeutil converts between "HH:MM" wall-clock strings and
// minutes-since-midnight, and compares hours across the midnight boundary.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses an "HH:MM" string into minutes since midnight.
// Malformed input returns ok=false; callers fall back to their defaults.
func TimeToMinutes(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// MinutesToTime formats minutes since midnight as "HH:MM", wrapping past
// midnight so schedule offsets that cross the day boundary stay valid.
func MinutesToTime(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AdjustHour shifts early-morning hours past midnight so that a 23:00 event
// and a 01:00 current hour compare on the same scale. Hours before 4 AM
// belong to the previous day's schedule.
func AdjustHour(h int) int {
	if h < 4 {
		return h + 24
	}
	return h
}
