package trip

import (
	"fmt"
	"strings"
	"time"
)

// ParseHourly converts freeform generated text into an hour-stamped schedule
// bounded by startClock and endClock (time-of-day strings, see ParseClock).
//
// Each non-empty line that is not a heading becomes one activity, stamped
// with a running clock that starts at startClock and advances one hour per
// activity. Emission stops once the running clock reaches or passes
// endClock, so an end at or before the start yields an empty schedule.
// Lines containing the markup marker "**" are headings, not activities, and
// do not consume a clock tick.
//
// The result is a deterministic function of its three inputs.
func ParseHourly(generatedText, startClock, endClock string) (string, error) {
	start, err := ParseClock(startClock)
	if err != nil {
		return "", fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return "", fmt.Errorf("end time: %w", err)
	}

	var slots []string
	current := start
	for _, line := range strings.Split(generatedText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "**") {
			continue
		}
		if !current.Before(end) {
			break
		}
		slots = append(slots, fmt.Sprintf("%s: %s", current.Format(ClockLayout), line))
		current = current.Add(time.Hour)
	}

	return strings.Join(slots, "\n"), nil
}
