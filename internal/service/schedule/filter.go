package schedule

import (
	"strings"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// Filter returns the events containing at least one assignment cell whose
// value matches name under trimmed, case-insensitive equality. An empty name
// selects nothing, never everything.
func Filter(events []model.RawEvent, name string) []model.RawEvent {
	out := make([]model.RawEvent, 0)
	if strings.TrimSpace(name) == "" {
		return out
	}

	for _, ev := range events {
		for _, extra := range ev.Extras {
			if matchName(extra.Value, name) {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

// ResolveShiftType returns the shift type of the first assignment cell of ev
// matching name. The second result is false when no cell matches; callers
// substitute their own fallback label.
func ResolveShiftType(ev model.RawEvent, name string) (model.ShiftType, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	for _, extra := range ev.Extras {
		if matchName(extra.Value, name) {
			return extra.ShiftType, true
		}
	}
	return "", false
}

func matchName(value, name string) bool {
	return strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(name))
}
