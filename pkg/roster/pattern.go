package roster

// SlotKey identifies one of the 4 rotating duty groups, independent of
// clock time. Which cohort answers to which key changes daily.
type SlotKey string

const (
	SlotMorningStart   SlotKey = "1"
	SlotMorningSupport SlotKey = "2"
	SlotAfternoonStart SlotKey = "3"
	SlotAfternoonClose SlotKey = "4"
)

// PatternEntry declares one fixed time slot: its label, which rotating
// groups are on duty, and how many volunteers each counter needs.
type PatternEntry struct {
	Label      string    `json:"label"`
	Keys       []SlotKey `json:"keys"`
	PerCounter int       `json:"per_counter"`
}

// Counters is the fixed number of staffed counters.
const Counters = 30

// EmptyMarker is rendered for a counter slot that received nobody.
const EmptyMarker = "⚠️ EMPTY"

// DefaultPattern covers a full 24-hour day in 2-hour slots.
// Peak slots need 4 per counter and draw two groups; off-peak slots
// need 2 and cycle through the groups one at a time. The key-to-hour
// order is part of the rota contract and must not be re-derived.
var DefaultPattern = []PatternEntry{
	{Label: "08:00 - 10:00 (Peak)", Keys: []SlotKey{"1", "2"}, PerCounter: 4},
	{Label: "10:00 - 12:00 (Peak)", Keys: []SlotKey{"3", "4"}, PerCounter: 4},
	{Label: "12:00 - 14:00 (Peak)", Keys: []SlotKey{"1", "2"}, PerCounter: 4},
	{Label: "14:00 - 16:00 (Peak)", Keys: []SlotKey{"3", "4"}, PerCounter: 4},
	{Label: "16:00 - 18:00 (Off)", Keys: []SlotKey{"1"}, PerCounter: 2},
	{Label: "18:00 - 20:00 (Off)", Keys: []SlotKey{"2"}, PerCounter: 2},
	{Label: "20:00 - 22:00 (Off)", Keys: []SlotKey{"3"}, PerCounter: 2},
	{Label: "22:00 - 00:00 (Off)", Keys: []SlotKey{"4"}, PerCounter: 2},
	{Label: "00:00 - 02:00 (Off)", Keys: []SlotKey{"1"}, PerCounter: 2},
	{Label: "02:00 - 04:00 (Off)", Keys: []SlotKey{"2"}, PerCounter: 2},
	{Label: "04:00 - 06:00 (Off)", Keys: []SlotKey{"3"}, PerCounter: 2},
	{Label: "06:00 - 08:00 (Off)", Keys: []SlotKey{"4"}, PerCounter: 2},
}

// SlotLabels returns the pattern's labels in declared order.
func SlotLabels(pattern []PatternEntry) []string {
	labels := make([]string, len(pattern))
	for i, entry := range pattern {
		labels[i] = entry.Label
	}
	return labels
}
