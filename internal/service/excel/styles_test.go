package excel

import "testing"

const testStyleSheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <fills count="4">
    <fill><patternFill patternType="none"/></fill>
    <fill><patternFill patternType="gray125"/></fill>
    <fill><patternFill patternType="solid"><fgColor rgb="FF00B0F0"/><bgColor indexed="64"/></patternFill></fill>
    <fill><patternFill patternType="solid"><fgColor theme="9" tint="0.39997558519241921"/><bgColor indexed="64"/></patternFill></fill>
  </fills>
  <cellXfs count="3">
    <xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/>
    <xf numFmtId="0" fontId="0" fillId="2" borderId="0" xfId="0" applyFill="1"/>
    <xf numFmtId="0" fontId="0" fillId="3" borderId="0" xfId="0" applyFill="1"/>
  </cellXfs>
</styleSheet>`

func TestDecodeStyleTable_ColorAndTheme(t *testing.T) {
	t.Parallel()

	table, err := decodeStyleTable([]byte(testStyleSheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := table.fill(0); got.Color != "" || got.Theme != nil {
		t.Fatalf("style 0 want empty fill, got %+v", got)
	}

	day := table.fill(1)
	if day.Color != "FF00B0F0" {
		t.Fatalf("style 1 color want=FF00B0F0 got=%q", day.Color)
	}
	if day.Theme != nil {
		t.Fatalf("style 1 theme want=nil got=%v", *day.Theme)
	}

	night := table.fill(2)
	if night.Theme == nil || *night.Theme != 9 {
		t.Fatalf("style 2 theme want=9 got=%v", night.Theme)
	}
	if night.Color != "" {
		t.Fatalf("style 2 color want empty got=%q", night.Color)
	}
}

func TestStyleTable_OutOfRange(t *testing.T) {
	t.Parallel()

	table, err := decodeStyleTable([]byte(testStyleSheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := table.fill(-1); got.Color != "" || got.Theme != nil {
		t.Fatalf("negative id want empty fill, got %+v", got)
	}
	if got := table.fill(99); got.Color != "" || got.Theme != nil {
		t.Fatalf("unknown id want empty fill, got %+v", got)
	}

	var empty *styleTable
	if got := empty.fill(0); got.Color != "" || got.Theme != nil {
		t.Fatalf("nil table want empty fill, got %+v", got)
	}
}

func TestDecodeStyleTable_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := decodeStyleTable([]byte("<styleSheet")); err == nil {
		t.Fatalf("expected an error for malformed XML")
	}
}
