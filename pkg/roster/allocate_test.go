package roster

import "testing"

func rotatedForTest(total, r int) map[SlotKey]Cohort {
	return RotateCohorts(BuildCohorts(total), r)
}

func TestAllocateSlot_PoolOrdering(t *testing.T) {
	rotated := rotatedForTest(250, 2)

	for _, entry := range DefaultPattern {
		alloc := AllocateSlot(rotated, entry, Counters)

		prev := 0
		for _, group := range alloc.Counters {
			for _, v := range group {
				if v.Num <= prev {
					t.Fatalf("%s: volunteer %d out of order after %d", entry.Label, v.Num, prev)
				}
				prev = v.Num
			}
		}
		for _, v := range alloc.Reserves {
			if v.Num <= prev {
				t.Fatalf("%s: reserve %d out of order after %d", entry.Label, v.Num, prev)
			}
			prev = v.Num
		}
	}
}

func TestAllocateSlot_Conservation(t *testing.T) {
	rotated := rotatedForTest(250, 1)

	for _, entry := range DefaultPattern {
		poolSize := 0
		for _, key := range entry.Keys {
			poolSize += len(rotated[key])
		}

		alloc := AllocateSlot(rotated, entry, Counters)
		assigned := 0
		for _, group := range alloc.Counters {
			assigned += len(group)
		}

		if assigned+len(alloc.Reserves) != poolSize {
			t.Errorf("%s: assigned %d + reserves %d != pool %d",
				entry.Label, assigned, len(alloc.Reserves), poolSize)
		}
	}
}

func TestAllocateSlot_PeakExactCoverage(t *testing.T) {
	// 240 volunteers, rotation 0: the first peak slot draws cohorts
	// A+B (120 people) and 30 counters of 4 consume them exactly.
	rotated := rotatedForTest(240, 0)
	alloc := AllocateSlot(rotated, DefaultPattern[0], Counters)

	if len(alloc.Reserves) != 0 {
		t.Fatalf("expected no reserves, got %d", len(alloc.Reserves))
	}

	next := 1
	for i, group := range alloc.Counters {
		if len(group) != 4 {
			t.Fatalf("counter %d has %d volunteers, want 4", i+1, len(group))
		}
		for _, v := range group {
			if v.Num != next {
				t.Fatalf("counter %d: got volunteer %d, want %d", i+1, v.Num, next)
			}
			next++
		}
	}
	if next != 121 {
		t.Errorf("peak slot consumed up to %d, want 120", next-1)
	}
}

func TestAllocateSlot_OffPeakSingleReserve(t *testing.T) {
	// 241 volunteers: chunk 61, so the first cohort holds V-1..V-61.
	// An off-peak slot needs 30*2 = 60, leaving exactly V-61 over.
	rotated := rotatedForTest(241, 0)
	entry := DefaultPattern[4] // "16:00 - 18:00 (Off)", keys {"1"}
	alloc := AllocateSlot(rotated, entry, Counters)

	if len(alloc.Reserves) != 1 {
		t.Fatalf("expected exactly 1 reserve, got %d", len(alloc.Reserves))
	}
	if alloc.Reserves[0].ID != "V-61" {
		t.Errorf("reserve = %s, want V-61", alloc.Reserves[0].ID)
	}
}

func TestAllocateSlot_ShortPool(t *testing.T) {
	// 8 volunteers cannot staff 30 counters; the pool runs out and the
	// trailing counters stay empty rather than erroring.
	rotated := rotatedForTest(8, 0)
	alloc := AllocateSlot(rotated, DefaultPattern[0], Counters)

	if len(alloc.Counters) != Counters {
		t.Fatalf("got %d counter groups, want %d", len(alloc.Counters), Counters)
	}
	if len(alloc.Counters[0]) != 4 {
		t.Errorf("counter 1 has %d volunteers, want 4", len(alloc.Counters[0]))
	}
	for i := 1; i < Counters; i++ {
		if len(alloc.Counters[i]) != 0 {
			t.Errorf("counter %d should be empty, has %d", i+1, len(alloc.Counters[i]))
		}
	}
	if len(alloc.Reserves) != 0 {
		t.Errorf("expected no reserves, got %d", len(alloc.Reserves))
	}
}

func TestMergePool_InterleavesCohorts(t *testing.T) {
	// With rotation 1 the first peak slot merges the cohorts holding
	// V-11..20 and V-21..30; the pool must come back numerically
	// sorted, not grouped by cohort.
	rotated := rotatedForTest(40, 1)
	pool := mergePool(rotated, []SlotKey{"1", "2"})

	if len(pool) != 20 {
		t.Fatalf("pool size = %d, want 20", len(pool))
	}
	for i, v := range pool {
		if v.Num != 11+i {
			t.Fatalf("pool[%d] = %d, want %d", i, v.Num, 11+i)
		}
	}
}
