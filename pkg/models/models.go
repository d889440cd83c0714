package models

// RosterInput is the request body for the roster endpoints
type RosterInput struct {
	TotalVolunteers int    `json:"total_volunteers"`
	RosterDate      string `json:"roster_date"` // YYYY-MM-DD
}

// FindInput is the request body for the volunteer lookup endpoint
type FindInput struct {
	TotalVolunteers int    `json:"total_volunteers"`
	RosterDate      string `json:"roster_date"`
	Query           string `json:"query"`
}

// RosterRow is one counter's rendered day in the JSON response
type RosterRow struct {
	Counter string            `json:"counter"`
	Cells   map[string]string `json:"cells"` // slot label -> rendered assignment
}

// ReserveRow is one slot's floating reserves in the JSON response
type ReserveRow struct {
	Time     string `json:"time"`
	Reserves string `json:"reserves"`
}

// RosterResponse is the full schedule for one day
type RosterResponse struct {
	Date          string       `json:"date"`
	RotationIndex int          `json:"rotation_index"`
	RotationCycle string       `json:"rotation_cycle"`
	Counters      int          `json:"counters"`
	SlotLabels    []string     `json:"slot_labels"`
	Rows          []RosterRow  `json:"rows"`
	Reserves      []ReserveRow `json:"reserves,omitempty"`
}

// DutyResult is one place a volunteer was found on the schedule
type DutyResult struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Role     string `json:"role"`
}

// FindResponse is the lookup result for a single volunteer
type FindResponse struct {
	Target  string       `json:"target"`
	Found   bool         `json:"found"`
	Duties  []DutyResult `json:"duties,omitempty"`
	Message string       `json:"message,omitempty"`
}
