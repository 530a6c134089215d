package schedule

import "github.com/vincfleurette/agenda-spv/internal/model"

// Classifier maps a cell's fill style to a shift type. Implementations must
// be total: every style, including an empty one, maps to some shift type.
type Classifier interface {
	Classify(style model.CellStyle) model.ShiftType
}

// day12FillColor is the ARGB fill the station uses for day shifts.
const day12FillColor = "FF00B0F0"

// night12Theme is the theme palette index used for night shifts.
const night12Theme = 9

// ColorClassifier is the default classifier, tied to the station workbook's
// styling convention. Rules apply in order, first match wins; anything
// unrecognized (including a cell with no fill at all) is a 24H shift.
type ColorClassifier struct{}

// NewColorClassifier creates the default fill-color classifier.
func NewColorClassifier() *ColorClassifier {
	return &ColorClassifier{}
}

// Classify resolves a shift type from fill metadata.
func (c *ColorClassifier) Classify(style model.CellStyle) model.ShiftType {
	if style.Color == day12FillColor {
		return model.ShiftDay12
	}
	if style.Theme != nil && *style.Theme == night12Theme {
		return model.ShiftNight12
	}
	return model.Shift24
}
