package fixtures

import (
	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
)

// DefaultShiftPatterns returns the authored pattern catalog shipped with the
// service. The cycle's day zero lines up with an assignment's effective-from
// date, so a "5x2" assignment should start on the employee's first working
// weekday.
func DefaultShiftPatterns() []pattern.ShiftPattern {
	work := func(hours float64) pattern.CycleSlot {
		return pattern.CycleSlot{Status: pattern.SlotWork, Hours: hours}
	}
	rest := pattern.CycleSlot{Status: pattern.SlotRest}

	return []pattern.ShiftPattern{
		{
			ID:    "5x2",
			Label: "5x2 (Mon-Fri, weekends off)",
			Cycle: []pattern.CycleSlot{
				work(8), work(8), work(8), work(8), work(8), rest, rest,
			},
			NominalWeeklyHours: 40,
		},
		{
			ID:    "6x1",
			Label: "6x1 (one rest day per week)",
			Cycle: []pattern.CycleSlot{
				work(7.33), work(7.33), work(7.33), work(7.33), work(7.33), work(7.33), rest,
			},
			NominalWeeklyHours: 44,
		},
		{
			ID:    "12x36",
			Label: "12x36 (12h on, 36h off)",
			Cycle: []pattern.CycleSlot{
				work(12), rest,
			},
			NominalWeeklyHours: 42,
		},
		{
			ID:    "24x48",
			Label: "24x48 (24h on, 48h off)",
			Cycle: []pattern.CycleSlot{
				work(24), rest, rest,
			},
			NominalWeeklyHours: 56,
		},
		{
			ID:    "fixed-morning",
			Label: "Fixed morning shift",
			Cycle: []pattern.CycleSlot{
				work(6), work(6), work(6), work(6), work(6), work(6), rest,
			},
			NominalWeeklyHours: 36,
		},
		{
			ID:    "fixed-night",
			Label: "Fixed night shift",
			Cycle: []pattern.CycleSlot{
				work(10), work(10), work(10), work(10), rest, rest, rest,
			},
			NominalWeeklyHours: 40,
		},
	}
}
