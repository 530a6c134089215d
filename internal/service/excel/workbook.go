package excel

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

// Workbook wraps an uploaded planning file and exposes the abstract view
// the schedule pipeline consumes: rows of cells with a display value and
// fill metadata.
type Workbook struct {
	file   *excelize.File
	fileID string
	styles *styleTable
}

// Open loads a workbook from its raw bytes and assigns it a fresh file ID.
func Open(data []byte) (*Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}

	styles, err := parseStyleTable(data)
	if err != nil {
		// Classification degrades to the 24H default without fills; the
		// schedule itself is still readable.
		log.Printf("workbook styles unavailable: %v", err)
		styles = &styleTable{}
	}

	return &Workbook{
		file:   file,
		fileID: uuid.New().String(),
		styles: styles,
	}, nil
}

// ID returns the generated file ID.
func (w *Workbook) ID() string {
	return w.fileID
}

// Sheets returns the sheet list with row counts.
func (w *Workbook) Sheets() []model.SheetInfo {
	names := w.file.GetSheetList()
	result := make([]model.SheetInfo, 0, len(names))

	for _, name := range names {
		rows, err := w.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, model.SheetInfo{
			Name:     name,
			RowCount: len(rows),
		})
	}

	return result
}

// Rows returns every cell of a sheet with its formatted value and fill
// metadata, in sheet order.
func (w *Workbook) Rows(sheet string) ([][]model.Cell, error) {
	if sheet == "" {
		return nil, errors.New("no sheet selected")
	}

	values, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	rows := make([][]model.Cell, len(values))
	for r, rowValues := range values {
		cells := make([]model.Cell, len(rowValues))
		for c, value := range rowValues {
			cells[c] = model.Cell{
				Value: value,
				Style: w.cellStyle(sheet, c+1, r+1),
			}
		}
		rows[r] = cells
	}

	return rows, nil
}

// cellStyle resolves the fill metadata of one cell (1-based coordinates).
func (w *Workbook) cellStyle(sheet string, col, row int) model.CellStyle {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.CellStyle{}
	}
	styleID, err := w.file.GetCellStyle(sheet, axis)
	if err != nil {
		return model.CellStyle{}
	}
	return w.styles.fill(styleID)
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
