package schedule

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// desiderataHeader marks the wish-list column of the planning sheet, which
// holds free-form availability notes rather than assignments.
const desiderataHeader = "DESIDERATA"

// NameIndexer builds the set of selectable person names from a planning
// sheet. A cell counts as a name when its style classifies as 24H (plain,
// no special fill), its trimmed value is non-empty and it contains no digit
// — which excludes date stamps and annotations sharing those columns.
type NameIndexer struct {
	classifier Classifier
}

// NewNameIndexer creates an indexer. A nil classifier falls back to the
// default fill-color rules.
func NewNameIndexer(c Classifier) *NameIndexer {
	if c == nil {
		c = NewColorClassifier()
	}
	return &NameIndexer{classifier: c}
}

// Names scans the assignment columns and returns the distinct names, sorted
// with French collation so accented names land where the user expects them
// in the dropdown.
func (n *NameIndexer) Names(rows [][]model.Cell) []string {
	if len(rows) == 0 {
		return []string{}
	}

	headerIdx := headerRowIndex(rows)
	header := rows[headerIdx]

	seen := make(map[string]struct{})
	for col := headerWidth; col < len(header); col++ {
		label := strings.TrimSpace(header[col].Value)
		if label == "" || label == desiderataHeader {
			continue
		}

		for _, row := range rows[headerIdx+1:] {
			if col >= len(row) {
				continue
			}
			cell := row[col]
			name := strings.TrimSpace(cell.Value)
			if name == "" || containsDigit(name) {
				continue
			}
			if n.classifier.Classify(cell.Style) != model.Shift24 {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	collate.New(language.French).SortStrings(names)
	return names
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
