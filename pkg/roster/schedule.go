package roster

import (
	"fmt"
	"strings"
	"time"
)

// Row is one counter's day: Cells[i] holds the volunteers assigned for
// pattern entry i. Cells stay typed until render time so that lookups
// never have to re-split a joined string.
type Row struct {
	Counter string
	Cells   [][]Volunteer
}

// ReserveEntry lists the volunteers on duty in one slot but not placed
// at any counter. Slots with nobody left over get no entry at all.
type ReserveEntry struct {
	Slot       string
	Volunteers []Volunteer
}

// Schedule is the assembled day: counter-major rows in counter order,
// columns in pattern order, plus the reserves log.
type Schedule struct {
	Date          time.Time
	RotationIndex int
	Pattern       []PatternEntry
	Rows          []Row
	Reserves      []ReserveEntry
}

// BuildSchedule runs the full pipeline for one day: cohort split,
// date-keyed rotation, per-slot allocation, and counter-major
// assembly. It is a pure function of its two inputs; calling it twice
// with the same arguments yields identical output.
func BuildSchedule(totalVolunteers int, date time.Time) *Schedule {
	groups := BuildCohorts(totalVolunteers)
	rotated := RotateCohorts(groups, RotationIndex(date))

	s := &Schedule{
		Date:          date,
		RotationIndex: RotationIndex(date),
		Pattern:       DefaultPattern,
		Rows:          make([]Row, Counters),
	}

	for i := range s.Rows {
		s.Rows[i] = Row{
			Counter: fmt.Sprintf("Counter %d", i+1),
			Cells:   make([][]Volunteer, len(s.Pattern)),
		}
	}

	for slotIdx, entry := range s.Pattern {
		alloc := AllocateSlot(rotated, entry, Counters)
		for i := 0; i < Counters; i++ {
			s.Rows[i].Cells[slotIdx] = alloc.Counters[i]
		}
		if len(alloc.Reserves) > 0 {
			s.Reserves = append(s.Reserves, ReserveEntry{
				Slot:       entry.Label,
				Volunteers: alloc.Reserves,
			})
		}
	}
	return s
}

// RotationCycle is the human-readable rotation position, 1-based out
// of the 4-day cycle.
func (s *Schedule) RotationCycle() string {
	return fmt.Sprintf("%d/4", s.RotationIndex+1)
}

// RenderCell joins a counter group for display, or the explicit empty
// marker when nobody was assigned.
func RenderCell(vols []Volunteer) string {
	if len(vols) == 0 {
		return EmptyMarker
	}
	ids := make([]string, len(vols))
	for i, v := range vols {
		ids[i] = v.ID
	}
	return strings.Join(ids, ", ")
}

// Display joins a reserve list for the reserves log.
func (r ReserveEntry) Display() string {
	return RenderCell(r.Volunteers)
}
