package excel_test

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/vincfleurette/agenda-spv/internal/service/excel"
)

// buildPlanningWorkbook writes a minimal planning sheet with one day-shift
// colored cell and returns the raw xlsx bytes.
func buildPlanningWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Planning"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}

	rows := [][]string{
		{"Date", "Equipe", "", "Pompiers"},
		{"10 avril 2025", "Equipe A", "", "Dupont"},
		{"11 avril 2025", "Equipe B", "", "Durand"},
	}
	for r, row := range rows {
		for c, value := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellStr(sheet, axis, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	dayStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00B0F0"}, Pattern: 1},
	})
	if err != nil {
		t.Fatalf("new style: %v", err)
	}
	if err := f.SetCellStyle(sheet, "D2", "D2", dayStyle); err != nil {
		t.Fatalf("set style: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestOpen_SheetsAndID(t *testing.T) {
	t.Parallel()

	wb, err := excel.Open(buildPlanningWorkbook(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer wb.Close()

	if wb.ID() == "" {
		t.Fatalf("expected a generated file ID")
	}

	sheets := wb.Sheets()
	if len(sheets) != 1 {
		t.Fatalf("sheets want=1 got=%d", len(sheets))
	}
	if sheets[0].Name != "Planning" || sheets[0].RowCount != 3 {
		t.Fatalf("unexpected sheet info: %+v", sheets[0])
	}
}

func TestRows_ValuesAndFillColors(t *testing.T) {
	t.Parallel()

	wb, err := excel.Open(buildPlanningWorkbook(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer wb.Close()

	rows, err := wb.Rows("Planning")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows want=3 got=%d", len(rows))
	}

	if got := rows[1][0].Value; got != "10 avril 2025" {
		t.Fatalf("date cell want=%q got=%q", "10 avril 2025", got)
	}

	// D2 carries the day-shift fill; excelize normalizes it to ARGB.
	if got := rows[1][3].Style.Color; got != "FF00B0F0" {
		t.Fatalf("D2 fill want=FF00B0F0 got=%q", got)
	}
	// D3 has no fill.
	if got := rows[2][3].Style; got.Color != "" || got.Theme != nil {
		t.Fatalf("D3 fill want empty got=%+v", got)
	}
}

func TestRows_Errors(t *testing.T) {
	t.Parallel()

	wb, err := excel.Open(buildPlanningWorkbook(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer wb.Close()

	if _, err := wb.Rows(""); err == nil {
		t.Fatalf("expected an error for an empty sheet name")
	}
	if _, err := wb.Rows("Inconnu"); err == nil {
		t.Fatalf("expected an error for an unknown sheet")
	}
}

func TestOpen_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := excel.Open([]byte("definitely not a workbook")); err == nil {
		t.Fatalf("expected an error")
	}
}
