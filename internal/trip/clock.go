// Package trip builds itinerary prompts and parses generated text into
// hour-stamped schedules.
package trip

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ClockLayout is the canonical 12-hour clock format used in schedule output.
const ClockLayout = "03:04 PM"

// ErrBadClock indicates a time-of-day value could not be parsed.
var ErrBadClock = errors.New("unrecognized clock value")

// clockLayouts are accepted input formats, tried in order. The canonical
// form is 12-hour with AM/PM; bare 24-hour values are accepted because the
// HTTP interface receives them from clients that skip the designator.
var clockLayouts = []string{ClockLayout, "3:04 PM", "15:04"}

// ParseClock parses a time-of-day string. Only the clock component is
// meaningful; the returned time carries Go's zero date.
func ParseClock(s string) (time.Time, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadClock, s)
}
