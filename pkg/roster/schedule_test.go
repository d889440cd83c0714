package roster

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

// 2024-01-04 is day 4 of the year, so rotation index 0.
var rotationZeroDate = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

func TestBuildSchedule_Shape(t *testing.T) {
	s := BuildSchedule(250, rotationZeroDate)

	if len(s.Rows) != Counters {
		t.Fatalf("got %d rows, want %d", len(s.Rows), Counters)
	}
	if len(s.Pattern) != 12 {
		t.Fatalf("got %d pattern entries, want 12", len(s.Pattern))
	}

	for i, row := range s.Rows {
		wantLabel := fmt.Sprintf("Counter %d", i+1)
		if row.Counter != wantLabel {
			t.Errorf("row %d label = %q, want %q", i, row.Counter, wantLabel)
		}
		if len(row.Cells) != len(s.Pattern) {
			t.Errorf("row %d has %d cells, want %d", i, len(row.Cells), len(s.Pattern))
		}
	}
}

func TestBuildSchedule_Idempotent(t *testing.T) {
	a := BuildSchedule(241, rotationZeroDate)
	b := BuildSchedule(241, rotationZeroDate)

	if !reflect.DeepEqual(a, b) {
		t.Error("two builds with identical inputs differ")
	}
}

func TestBuildSchedule_NoReservesAt240(t *testing.T) {
	// 240 splits into four cohorts of 60: every peak slot needs
	// exactly 120 and every off-peak slot exactly 60, so nothing is
	// ever left over.
	s := BuildSchedule(240, rotationZeroDate)

	if len(s.Reserves) != 0 {
		t.Errorf("expected empty reserves log, got %d entries", len(s.Reserves))
	}
}

func TestBuildSchedule_ReservesInPatternOrder(t *testing.T) {
	s := BuildSchedule(241, rotationZeroDate)

	labelIndex := make(map[string]int)
	for i, entry := range s.Pattern {
		labelIndex[entry.Label] = i
	}

	prev := -1
	for _, entry := range s.Reserves {
		idx, ok := labelIndex[entry.Slot]
		if !ok {
			t.Fatalf("reserve entry for unknown slot %q", entry.Slot)
		}
		if idx <= prev {
			t.Errorf("reserves log out of pattern order at %q", entry.Slot)
		}
		prev = idx

		if len(entry.Volunteers) == 0 {
			t.Errorf("slot %q has an empty reserve entry; empty slots must be omitted", entry.Slot)
		}
	}
}

func TestBuildSchedule_RotationShiftsCohorts(t *testing.T) {
	// On consecutive days a different cohort opens the morning shift.
	day1 := BuildSchedule(240, rotationZeroDate)
	day2 := BuildSchedule(240, rotationZeroDate.AddDate(0, 0, 1))

	first1 := day1.Rows[0].Cells[4] // "16:00 - 18:00 (Off)", key "1" only
	first2 := day2.Rows[0].Cells[4]

	if first1[0].Num == first2[0].Num {
		t.Errorf("rotation did not change the off-peak opener: both days start with V-%d", first1[0].Num)
	}
}

func TestRotationCycle(t *testing.T) {
	s := BuildSchedule(240, rotationZeroDate)
	if s.RotationCycle() != "1/4" {
		t.Errorf("rotation cycle = %q, want 1/4", s.RotationCycle())
	}
}

func TestRenderCell(t *testing.T) {
	got := RenderCell([]Volunteer{NewVolunteer(1), NewVolunteer(2)})
	if got != "V-1, V-2" {
		t.Errorf("rendered cell = %q, want %q", got, "V-1, V-2")
	}

	if RenderCell(nil) != EmptyMarker {
		t.Errorf("empty cell = %q, want marker %q", RenderCell(nil), EmptyMarker)
	}

	// A single volunteer renders as a plain ID, distinguishable from
	// the empty marker.
	if RenderCell([]Volunteer{NewVolunteer(7)}) != "V-7" {
		t.Errorf("single-volunteer cell = %q, want V-7", RenderCell([]Volunteer{NewVolunteer(7)}))
	}
}
