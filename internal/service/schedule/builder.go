package schedule

import (
	"fmt"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// Build assembles the calendar event for one shift: resolved time window
// plus the user-facing title and description. Resolver failures propagate
// unchanged.
func Build(date, team string, st model.ShiftType) (model.CalendarEvent, error) {
	window, err := ResolveWindow(date, st)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	return model.CalendarEvent{
		Title:       fmt.Sprintf("Garde %s - %s", st, team),
		Description: fmt.Sprintf("Garde de %s pour l'équipe %s", st, team),
		Start:       window.Start,
		End:         window.End,
	}, nil
}

// BuildForName runs the tail of the pipeline: filters events down to the
// selected name and builds one calendar event per match. The first
// resolution failure aborts the whole build; no partial output is produced.
func BuildForName(events []model.RawEvent, name string) ([]model.CalendarEvent, error) {
	filtered := Filter(events, name)

	out := make([]model.CalendarEvent, 0, len(filtered))
	for _, ev := range filtered {
		st, ok := ResolveShiftType(ev, name)
		if !ok {
			// Filter only returns matching events.
			continue
		}
		ce, err := Build(ev.Date, ev.Team, st)
		if err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, nil
}
