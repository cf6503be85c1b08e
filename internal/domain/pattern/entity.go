package pattern

type SlotStatus string

const (
	SlotWork SlotStatus = "work"
	SlotRest SlotStatus = "rest"
)

// CycleSlot is one day of a repeating shift cycle.
type CycleSlot struct {
	Status SlotStatus
	Hours  float64
}

// ShiftPattern is an authored catalog entry describing a repeating cycle of
// work and rest days. Patterns are data, not computation: the cycle repeats
// from an assignment's effective-from date onwards.
type ShiftPattern struct {
	ID    string
	Label string
	Cycle []CycleSlot

	// NominalWeeklyHours is informational only. The sum of work hours over
	// the cycle divided by cycle days approximates it; this is not enforced
	// at runtime.
	NominalWeeklyHours float64
}

func (p ShiftPattern) CycleLength() int {
	return len(p.Cycle)
}
