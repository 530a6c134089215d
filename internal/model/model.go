package model

// ShiftType is the duty-shift category, encoded in the planning workbook by
// the fill style of the assignment cell. The string value is the label shown
// to the user and interpolated into calendar events.
type ShiftType string

const (
	ShiftDay12   ShiftType = "12H Jour"
	ShiftNight12 ShiftType = "12H Nuit"
	Shift24      ShiftType = "24H"
)

// CellStyle is the fill metadata of a single cell. Color is the ARGB hex
// string of the pattern fill foreground ("FF00B0F0"); Theme is the theme
// palette index when the fill references the workbook theme instead of an
// explicit color. Either or both may be absent.
type CellStyle struct {
	Color string `json:"color,omitempty"`
	Theme *int   `json:"theme,omitempty"`
}

// Cell is one spreadsheet cell as seen by the extraction pipeline: the
// formatted display value plus its fill style.
type Cell struct {
	Value string    `json:"value"`
	Style CellStyle `json:"style"`
}

// ExtraCell is an assignment cell of a schedule row (columns beyond
// date/team), classified at extraction time.
type ExtraCell struct {
	Value     string    `json:"value"`
	Style     CellStyle `json:"style"`
	ShiftType ShiftType `json:"shiftType"`
}

// RawEvent is one qualifying schedule row: a date, the on-duty team and the
// ordered assignment cells. Date keeps the locale-formatted source string.
type RawEvent struct {
	Date   string      `json:"date"`
	Team   string      `json:"team"`
	Extras []ExtraCell `json:"extras"`
}

// Date is a structured calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Window is the concrete start/end of a duty shift, in local time.
type Window struct {
	Start DateTime `json:"start"`
	End   DateTime `json:"end"`
}

// DateTime is a timezone-free local date-time, month 1-indexed.
type DateTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// CalendarEvent is the terminal artifact handed to the ICS serializer.
type CalendarEvent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Start       DateTime `json:"start"`
	End         DateTime `json:"end"`
}

// SheetInfo describes one sheet of an uploaded workbook.
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}
