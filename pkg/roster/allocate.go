package roster

import "sort"

// SlotAllocation is the outcome of staffing one time slot: one
// volunteer group per counter (possibly short or empty at the tail)
// plus whoever was on duty but left over.
type SlotAllocation struct {
	Entry    PatternEntry
	Counters [][]Volunteer
	Reserves []Volunteer
}

// mergePool concatenates the cohorts on duty for an entry, in the key
// order the pattern declares, then re-sorts by roster number. The
// re-sort is what keeps merged cohorts interleaved numerically instead
// of clumped by group.
func mergePool(rotated map[SlotKey]Cohort, keys []SlotKey) []Volunteer {
	var pool []Volunteer
	for _, key := range keys {
		pool = append(pool, rotated[key]...)
	}
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].Num < pool[j].Num
	})
	return pool
}

// AllocateSlot staffs one pattern entry: the sorted pool is sliced into
// counters groups of Entry.PerCounter in order, and anything past
// counters*PerCounter becomes the slot's reserves. A pool that runs out
// leaves the remaining counters with empty groups; nothing is borrowed
// back from reserves or other slots.
func AllocateSlot(rotated map[SlotKey]Cohort, entry PatternEntry, counters int) SlotAllocation {
	pool := mergePool(rotated, entry.Keys)

	alloc := SlotAllocation{
		Entry:    entry,
		Counters: make([][]Volunteer, counters),
	}

	idx := 0
	for i := 0; i < counters; i++ {
		start, end := idx, idx+entry.PerCounter
		if start > len(pool) {
			start = len(pool)
		}
		if end > len(pool) {
			end = len(pool)
		}
		alloc.Counters[i] = pool[start:end]
		idx += entry.PerCounter
	}

	if idx < len(pool) {
		alloc.Reserves = pool[idx:]
	}
	return alloc
}
