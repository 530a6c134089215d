package schedule

import (
	"strings"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// headerWidth is the fixed width of the leading columns of a planning sheet:
// date, team, and one reserved column. Assignment cells start after it.
const headerWidth = 3

// Extractor walks planning rows and produces one RawEvent per qualifying
// row. Extraction never fails: rows without a date or team are skipped.
type Extractor struct {
	classifier Classifier
}

// NewExtractor creates an extractor. A nil classifier falls back to the
// default fill-color rules.
func NewExtractor(c Classifier) *Extractor {
	if c == nil {
		c = NewColorClassifier()
	}
	return &Extractor{classifier: c}
}

// Extract walks the sheet rows, header included, and returns the raw events
// in row order. A row qualifies only when both its date cell (column 0) and
// team cell (column 1) are non-empty; blank spacer rows are skipped
// silently.
func (e *Extractor) Extract(rows [][]model.Cell) []model.RawEvent {
	events := make([]model.RawEvent, 0, len(rows))

	start := headerRowIndex(rows) + 1
	if start > len(rows) {
		return events
	}

	for _, row := range rows[start:] {
		date := cellValue(row, 0)
		team := cellValue(row, 1)
		if date == "" || team == "" {
			continue
		}

		extras := make([]model.ExtraCell, 0)
		for col := headerWidth; col < len(row); col++ {
			cell := row[col]
			extras = append(extras, model.ExtraCell{
				Value:     cell.Value,
				Style:     cell.Style,
				ShiftType: e.classifier.Classify(cell.Style),
			})
		}

		events = append(events, model.RawEvent{
			Date:   date,
			Team:   team,
			Extras: extras,
		})
	}

	return events
}

// headerRowIndex returns the index of the header row: the first row, or the
// second one when the first is entirely empty (some exports keep a blank
// banner row on top).
func headerRowIndex(rows [][]model.Cell) int {
	if len(rows) == 0 {
		return 0
	}
	for _, cell := range rows[0] {
		if strings.TrimSpace(cell.Value) != "" {
			return 0
		}
	}
	if len(rows) > 1 {
		return 1
	}
	return 0
}

func cellValue(row []model.Cell, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx].Value
}
