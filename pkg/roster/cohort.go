package roster

import (
	"fmt"
	"time"
)

// Volunteer is an immutable roster member. Num is the 1-based position
// on the master list; ID is the display form shown on the board.
type Volunteer struct {
	Num int    `json:"num"`
	ID  string `json:"id"`
}

// NewVolunteer builds the canonical display form for a roster number.
func NewVolunteer(num int) Volunteer {
	return Volunteer{Num: num, ID: fmt.Sprintf("V-%d", num)}
}

// Cohort is one contiguous quarter of the master list, sorted by Num.
type Cohort []Volunteer

// BuildCohorts splits volunteers 1..total into 4 contiguous cohorts.
// The first three take ceil(total/4) members each; the fourth takes
// whatever remains. Small rosters produce empty trailing cohorts
// rather than an error.
func BuildCohorts(total int) [4]Cohort {
	master := make([]Volunteer, total)
	for i := range master {
		master[i] = NewVolunteer(i + 1)
	}

	chunk := (total + 3) / 4

	var groups [4]Cohort
	for i := 0; i < 4; i++ {
		start := i * chunk
		end := start + chunk
		if i == 3 || end > total {
			end = total
		}
		if start > total {
			start = total
		}
		groups[i] = Cohort(master[start:end])
	}
	return groups
}

// RotationIndex derives the daily rotation position from the calendar
// date. Consecutive days advance it by one, wrapping every 4 days.
func RotationIndex(date time.Time) int {
	return date.YearDay() % 4
}

// RotateCohorts maps the 4 cohorts onto slot keys "1".."4" after
// left-rotating them by r positions, so no cohort is stuck with the
// same hours every day. r is reduced mod 4, so any integer is safe.
func RotateCohorts(groups [4]Cohort, r int) map[SlotKey]Cohort {
	r = ((r % 4) + 4) % 4

	rotated := make(map[SlotKey]Cohort, 4)
	keys := []SlotKey{SlotMorningStart, SlotMorningSupport, SlotAfternoonStart, SlotAfternoonClose}
	for i, key := range keys {
		rotated[key] = groups[(i+r)%4]
	}
	return rotated
}
