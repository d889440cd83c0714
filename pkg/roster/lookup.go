package roster

import (
	"strconv"
	"strings"
)

// Duty roles and locations reported by FindVolunteer.
const (
	RoleCounterDuty = "Counter Duty"
	RoleStandby     = "Standby"
	ReserveArea     = "Reserve Area"
)

// DutyRecord is one place a volunteer was found on the day's schedule.
type DutyRecord struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Role     string `json:"role"`
}

// ParseQuery pulls the digits out of a free-text query and returns the
// canonical display ID. ok is false when the query holds no digits,
// in which case no search should run.
func ParseQuery(query string) (string, bool) {
	var digits strings.Builder
	for _, r := range query {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", false
	}
	num, err := strconv.Atoi(digits.String())
	if err != nil {
		return "", false
	}
	return NewVolunteer(num).ID, true
}

// FindVolunteer reports every duty the target ID holds on the
// schedule: counter cells first in table order, then reserve slots in
// pattern order. Matching is exact membership on the typed cell lists,
// so "V-1" never matches inside a cell holding "V-100". A nil result
// means the volunteer is off duty all day.
func (s *Schedule) FindVolunteer(targetID string) []DutyRecord {
	var found []DutyRecord

	for _, row := range s.Rows {
		for slotIdx, cell := range row.Cells {
			for _, v := range cell {
				if v.ID == targetID {
					found = append(found, DutyRecord{
						Time:     s.Pattern[slotIdx].Label,
						Location: row.Counter,
						Role:     RoleCounterDuty,
					})
					break
				}
			}
		}
	}

	for _, entry := range s.Reserves {
		for _, v := range entry.Volunteers {
			if v.ID == targetID {
				found = append(found, DutyRecord{
					Time:     entry.Slot,
					Location: ReserveArea,
					Role:     RoleStandby,
				})
				break
			}
		}
	}

	return found
}
