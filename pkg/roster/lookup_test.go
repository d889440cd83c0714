package roster

import "testing"

func TestParseQuery(t *testing.T) {
	cases := []struct {
		query  string
		target string
		ok     bool
	}{
		{"100", "V-100", true},
		{"V-23", "V-23", true},
		{"volunteer 7 please", "V-7", true},
		{"007", "V-7", true},
		{"", "", false},
		{"no numbers here", "", false},
	}

	for _, tc := range cases {
		target, ok := ParseQuery(tc.query)
		if ok != tc.ok || target != tc.target {
			t.Errorf("ParseQuery(%q) = (%q, %v), want (%q, %v)",
				tc.query, target, ok, tc.target, tc.ok)
		}
	}
}

func TestFindVolunteer_ExactToken(t *testing.T) {
	// V-1 must only match itself, never inside V-100's or V-10's cell.
	s := BuildSchedule(250, rotationZeroDate)

	duties := s.FindVolunteer("V-1")
	if len(duties) == 0 {
		t.Fatal("V-1 should hold duties on a 250-volunteer roster")
	}

	for _, d := range duties {
		if d.Role != RoleCounterDuty && d.Role != RoleStandby {
			t.Errorf("unexpected role %q", d.Role)
		}
		if d.Role == RoleCounterDuty {
			// V-1 sorts first in every pool it joins, so it always
			// lands on Counter 1.
			if d.Location != "Counter 1" {
				t.Errorf("V-1 at %q in slot %q, want Counter 1", d.Location, d.Time)
			}
		}
	}
}

func TestFindVolunteer_DutyCount(t *testing.T) {
	// Rotation 0 puts the first cohort on slot key "1": two peak slots
	// plus two off-peak slots, four duties in all.
	s := BuildSchedule(240, rotationZeroDate)

	duties := s.FindVolunteer("V-1")
	if len(duties) != 4 {
		t.Fatalf("V-1 holds %d duties, want 4", len(duties))
	}

	wantSlots := map[string]bool{
		"08:00 - 10:00 (Peak)": true,
		"12:00 - 14:00 (Peak)": true,
		"16:00 - 18:00 (Off)":  true,
		"00:00 - 02:00 (Off)":  true,
	}
	for _, d := range duties {
		if !wantSlots[d.Time] {
			t.Errorf("unexpected duty slot %q", d.Time)
		}
	}
}

func TestFindVolunteer_Standby(t *testing.T) {
	// With 241 volunteers the first cohort holds 61 members and each
	// off-peak slot it staffs seats only 60, so V-61 waits in the
	// reserve area for both of those slots.
	s := BuildSchedule(241, rotationZeroDate)

	var standby []DutyRecord
	for _, d := range s.FindVolunteer("V-61") {
		if d.Role == RoleStandby {
			standby = append(standby, d)
		}
	}

	if len(standby) != 2 {
		t.Fatalf("V-61 has %d standby duties, want 2", len(standby))
	}
	for _, d := range standby {
		if d.Location != ReserveArea {
			t.Errorf("standby location = %q, want %q", d.Location, ReserveArea)
		}
	}
	if standby[0].Time != "16:00 - 18:00 (Off)" || standby[1].Time != "00:00 - 02:00 (Off)" {
		t.Errorf("standby slots = %q, %q; want the two off-peak slots for key 1",
			standby[0].Time, standby[1].Time)
	}
}

func TestFindVolunteer_NoDuty(t *testing.T) {
	s := BuildSchedule(100, rotationZeroDate)

	if duties := s.FindVolunteer("V-999"); duties != nil {
		t.Errorf("V-999 should have no duties, got %d", len(duties))
	}
}
