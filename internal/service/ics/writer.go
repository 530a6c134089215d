package ics

import (
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// prodID identifies this application in the generated calendars.
const prodID = "-//agenda-spv//garde pompier//FR"

// localStampLayout is the floating (timezone-free) ICS date-time form. The
// shift windows are local wall-clock times, so DTSTART/DTEND stay floating
// instead of being pinned to UTC.
const localStampLayout = "20060102T150405"

// Write serializes calendar events into an ICS payload, one VEVENT per
// record. The event list may not be empty: an empty calendar download is
// always a caller mistake (no shift matched the selected name).
func Write(events []model.CalendarEvent) ([]byte, error) {
	if len(events) == 0 {
		return nil, errors.New("no events to serialize")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()
	for _, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s@agenda-spv", uuid.New().String()))
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.Title)
		ve.SetDescription(ev.Description)
		ve.SetProperty(ical.ComponentPropertyDtStart, stamp(ev.Start))
		ve.SetProperty(ical.ComponentPropertyDtEnd, stamp(ev.End))
	}

	return []byte(cal.Serialize()), nil
}

func stamp(dt model.DateTime) string {
	t := time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, time.UTC)
	return t.Format(localStampLayout)
}
