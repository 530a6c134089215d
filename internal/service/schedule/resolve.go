package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// Shift boundaries, local time. The station relieves at 07:30 and 19:30;
// these are fixed, not configurable.
const (
	reliefHourMorning = 7
	reliefHourEvening = 19
	reliefMinute      = 30
)

// InvalidDateError reports a date string that cannot be decomposed into
// day, month and year.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("date invalide: %q", e.Input)
}

// UnrecognizedServiceTypeError reports a shift type outside the known
// enumeration reaching the resolver. This is a caller contract violation,
// not a data problem.
type UnrecognizedServiceTypeError struct {
	ShiftType model.ShiftType
}

func (e *UnrecognizedServiceTypeError) Error() string {
	return fmt.Sprintf("type de garde inconnu: %q", string(e.ShiftType))
}

var (
	frenchTextDateRe    = regexp.MustCompile(`^(\d{1,2})(?:er)?\s+(\p{L}+\.?)\s+(\d{4})$`)
	frenchNumericDateRe = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})$`)
)

// frenchMonths maps French month names to month numbers, with the common
// unaccented and abbreviated spellings seen in exported sheets.
var frenchMonths = map[string]int{
	"janvier": 1, "janv": 1,
	"février": 2, "fevrier": 2, "févr": 2, "fevr": 2,
	"mars": 3,
	"avril": 4, "avr": 4,
	"mai":  5,
	"juin": 6,
	"juillet": 7, "juil": 7,
	"août": 8, "aout": 8,
	"septembre": 9, "sept": 9,
	"octobre": 10, "oct": 10,
	"novembre": 11, "nov": 11,
	"décembre": 12, "decembre": 12, "déc": 12, "dec": 12,
}

// ParseFrenchDate parses a French-locale date string, either textual
// ("15 mars 2025") or numeric day-first ("15/03/2025"). The source sheets
// are French exports, so day-first order is trusted here and nowhere else.
func ParseFrenchDate(input string) (model.Date, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	var day, month, year int
	if m := frenchTextDateRe.FindStringSubmatch(s); m != nil {
		day, _ = strconv.Atoi(m[1])
		month = frenchMonths[strings.TrimSuffix(m[2], ".")]
		year, _ = strconv.Atoi(m[3])
	} else if m := frenchNumericDateRe.FindStringSubmatch(s); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return model.Date{}, &InvalidDateError{Input: input}
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1 {
		return model.Date{}, &InvalidDateError{Input: input}
	}
	return model.Date{Year: year, Month: month, Day: day}, nil
}

// ResolveWindow computes the start/end of a shift from a French-formatted
// date string. Fails with InvalidDateError or UnrecognizedServiceTypeError.
func ResolveWindow(date string, st model.ShiftType) (model.Window, error) {
	d, err := ParseFrenchDate(date)
	if err != nil {
		return model.Window{}, err
	}
	return ResolveDateWindow(d, st)
}

// ResolveDateWindow computes the start/end of a shift from a structured
// date. The shift type is validated here regardless of what the classifier
// guarantees, since resolution is also reachable from other callers.
func ResolveDateWindow(d model.Date, st model.ShiftType) (model.Window, error) {
	day := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	switch st {
	case model.ShiftDay12:
		return model.Window{
			Start: at(day, reliefHourMorning),
			End:   at(day, reliefHourEvening),
		}, nil
	case model.ShiftNight12:
		return model.Window{
			Start: at(day, reliefHourEvening),
			End:   at(next, reliefHourMorning),
		}, nil
	case model.Shift24:
		return model.Window{
			Start: at(day, reliefHourMorning),
			End:   at(next, reliefHourMorning),
		}, nil
	default:
		return model.Window{}, &UnrecognizedServiceTypeError{ShiftType: st}
	}
}

func at(day time.Time, hour int) model.DateTime {
	return model.DateTime{
		Year:   day.Year(),
		Month:  int(day.Month()),
		Day:    day.Day(),
		Hour:   hour,
		Minute: reliefMinute,
	}
}
