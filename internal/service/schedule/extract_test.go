package schedule

import (
	"testing"

	"github.com/vincfleurette/agenda-spv/internal/model"
)

func plainRow(values ...string) []model.Cell {
	row := make([]model.Cell, len(values))
	for i, v := range values {
		row[i] = model.Cell{Value: v}
	}
	return row
}

func TestExtract_QualifyingRows(t *testing.T) {
	t.Parallel()

	rows := [][]model.Cell{
		plainRow("Date", "Equipe", "", "Pompiers"),
		plainRow("10 avril 2025", "Equipe A", "x", "Dupont", "Martin"),
		plainRow("", "Equipe B", "", "Durand"),       // no date
		plainRow("11 avril 2025", "", "", "Durand"),  // no team
		plainRow(),                                   // blank spacer
		plainRow("12 avril 2025", "Equipe C"),        // no extras, still kept
	}

	events := NewExtractor(nil).Extract(rows)
	if len(events) != 2 {
		t.Fatalf("events want=2 got=%d", len(events))
	}

	first := events[0]
	if first.Date != "10 avril 2025" || first.Team != "Equipe A" {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if len(first.Extras) != 2 || first.Extras[0].Value != "Dupont" || first.Extras[1].Value != "Martin" {
		t.Fatalf("extra order not preserved: %+v", first.Extras)
	}

	second := events[1]
	if second.Date != "12 avril 2025" || len(second.Extras) != 0 {
		t.Fatalf("unexpected second event: %+v", second)
	}
}

func TestExtract_ClassifiesExtras(t *testing.T) {
	t.Parallel()

	rows := [][]model.Cell{
		plainRow("Date", "Equipe", "", "Pompiers"),
		{
			{Value: "10 avril 2025"},
			{Value: "Equipe A"},
			{Value: ""},
			{Value: "Dupont", Style: model.CellStyle{Color: "FF00B0F0"}},
			{Value: "Martin", Style: model.CellStyle{Theme: intPtr(9)}},
			{Value: "Durand"},
		},
	}

	events := NewExtractor(nil).Extract(rows)
	if len(events) != 1 {
		t.Fatalf("events want=1 got=%d", len(events))
	}

	extras := events[0].Extras
	if extras[0].ShiftType != model.ShiftDay12 {
		t.Fatalf("extra 0 want=%s got=%s", model.ShiftDay12, extras[0].ShiftType)
	}
	if extras[1].ShiftType != model.ShiftNight12 {
		t.Fatalf("extra 1 want=%s got=%s", model.ShiftNight12, extras[1].ShiftType)
	}
	if extras[2].ShiftType != model.Shift24 {
		t.Fatalf("extra 2 want=%s got=%s", model.Shift24, extras[2].ShiftType)
	}
}

func TestExtract_BlankFirstRowFallsBackToSecondHeader(t *testing.T) {
	t.Parallel()

	rows := [][]model.Cell{
		plainRow("", "", ""),
		plainRow("Date", "Equipe", "", "Pompiers"),
		plainRow("10 avril 2025", "Equipe A", "", "Dupont"),
	}

	events := NewExtractor(nil).Extract(rows)
	if len(events) != 1 {
		t.Fatalf("events want=1 got=%d", len(events))
	}
	if events[0].Date != "10 avril 2025" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	if got := NewExtractor(nil).Extract(nil); len(got) != 0 {
		t.Fatalf("want no events, got %d", len(got))
	}
	if got := NewExtractor(nil).Extract([][]model.Cell{plainRow("Date", "Equipe")}); len(got) != 0 {
		t.Fatalf("header-only sheet: want no events, got %d", len(got))
	}
}
