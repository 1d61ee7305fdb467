package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparsableTime is returned when user input matches none of the
// accepted time formats.
var ErrUnparsableTime = errors.New("unparsable time")

// acceptedLayouts are tried in order; the first one that parses wins.
// Covers 2:04 PM, 2:04PM, 2 PM, 2PM and 14:04.
var acceptedLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04",
}

// NormalizeTime parses a user-supplied time of day and returns the
// canonical zero-padded 24-hour HH:MM form used as the schedule key.
func NormalizeTime(input string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnparsableTime, input)
}

// MinutesUntil reports how many minutes remain until the canonical HH:MM
// time next occurs, measured against now's UTC wall clock. A time that has
// already passed today yields 0 ("imminent") rather than a negative value.
func MinutesUntil(now time.Time, hhmm string) int {
	t, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return 0
	}
	now = now.UTC()
	diff := (t.Hour()*60 + t.Minute()) - (now.Hour()*60 + now.Minute())
	if diff < 0 {
		return 0
	}
	return diff
}
