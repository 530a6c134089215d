package excel

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

const styleSheetPath = "xl/styles.xml"

// excelize's public style API does not expose whether a pattern fill points
// at an explicit ARGB color or a theme palette slot, and the night-shift
// convention of the source workbooks is a theme reference. So the fill table
// is read straight out of xl/styles.xml and joined with the style IDs
// excelize reports per cell.

type xlsxStyleSheet struct {
	XMLName xml.Name  `xml:"styleSheet"`
	Fills   xlsxFills `xml:"fills"`
	CellXfs xlsxXfs   `xml:"cellXfs"`
}

type xlsxFills struct {
	Fill []xlsxFill `xml:"fill"`
}

type xlsxFill struct {
	PatternFill xlsxPatternFill `xml:"patternFill"`
}

type xlsxPatternFill struct {
	PatternType string     `xml:"patternType,attr"`
	FgColor     *xlsxColor `xml:"fgColor"`
}

type xlsxColor struct {
	RGB   string `xml:"rgb,attr"`
	Theme *int   `xml:"theme,attr"`
}

type xlsxXfs struct {
	Xf []xlsxXf `xml:"xf"`
}

type xlsxXf struct {
	FillID *int `xml:"fillId,attr"`
}

// styleTable resolves a cell style ID to its fill metadata.
type styleTable struct {
	sheet *xlsxStyleSheet
}

// parseStyleTable reads xl/styles.xml out of the raw workbook archive. A
// workbook without a stylesheet yields an empty table, not an error.
func parseStyleTable(workbook []byte) (*styleTable, error) {
	zr, err := zip.NewReader(bytes.NewReader(workbook), int64(len(workbook)))
	if err != nil {
		return nil, fmt.Errorf("open workbook archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != styleSheetPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", styleSheetPath, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", styleSheetPath, err)
		}
		return decodeStyleTable(data)
	}

	return &styleTable{}, nil
}

func decodeStyleTable(data []byte) (*styleTable, error) {
	var sheet xlsxStyleSheet
	if err := xml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("decode %s: %w", styleSheetPath, err)
	}
	return &styleTable{sheet: &sheet}, nil
}

// fill returns the fill metadata of a cell style ID as reported by
// excelize. Unknown IDs and unfilled styles come back empty.
func (t *styleTable) fill(styleID int) model.CellStyle {
	if t == nil || t.sheet == nil {
		return model.CellStyle{}
	}
	if styleID < 0 || styleID >= len(t.sheet.CellXfs.Xf) {
		return model.CellStyle{}
	}

	xf := t.sheet.CellXfs.Xf[styleID]
	if xf.FillID == nil || *xf.FillID < 0 || *xf.FillID >= len(t.sheet.Fills.Fill) {
		return model.CellStyle{}
	}

	fg := t.sheet.Fills.Fill[*xf.FillID].PatternFill.FgColor
	if fg == nil {
		return model.CellStyle{}
	}
	return model.CellStyle{Color: fg.RGB, Theme: fg.Theme}
}
