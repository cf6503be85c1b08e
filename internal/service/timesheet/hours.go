package timesheet

import (
	"fmt"
	"math"

	"github.com/villacare/timekeeper-backend-go/internal/domain/leave"
	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
)

// HoursCalculator derives worked duration, night-differential minutes and
// overtime buckets from a reconciled ledger day. Overnight normalization
// (exit treated as next calendar day when it precedes the entry) lives here
// and nowhere else.
type HoursCalculator struct {
	cfg timesheet.WorkdayConfig
}

func NewHoursCalculator(cfg timesheet.WorkdayConfig) (*HoursCalculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HoursCalculator{cfg: cfg}, nil
}

// Compute fails fast for its single day: a malformed punch returns a typed
// error so the caller can attach it to that date alone.
func (c *HoursCalculator) Compute(day timesheet.LedgerDay, override *leave.Day) (timesheet.DayHours, error) {
	out := timesheet.DayHours{Date: day.Date}

	p := day.Actual.Punch
	recorded := day.Actual.IsRecorded() && p.HasTimes()

	if recorded && p.Entry != nil && p.Exit != nil {
		worked, night, err := c.workedAndNight(p)
		if err != nil {
			return timesheet.DayHours{}, err
		}
		out.WorkedMinutes = worked
		out.NightMinutes = night

		expectedMinutes := int(math.Round(day.Expected.ExpectedHours * 60))
		if excess := worked - expectedMinutes; excess > 0 {
			// The excess is the tail of the shift: the last minutes beyond
			// the expected hours. Split by where that tail falls on the
			// night window.
			_, exitM := normalizedSpan(p)
			nocturnal := c.nightOverlap(exitM-excess, exitM)
			out.OvertimeNocturnalMinutes = nocturnal
			out.OvertimeDiurnalMinutes = excess - nocturnal
		}
	}

	switch {
	case out.WorkedMinutes > 0:
		// Worked day; leave overrides do not apply.
	case override != nil && day.Expected.MustWork:
		if override.Paid {
			out.PaidLeave = true
		} else {
			out.UnpaidLeave = true
		}
	case day.Expected.MustWork && !recorded:
		out.Absent = true
	}

	return out, nil
}

// workedAndNight removes the break from the shift span and measures the
// remaining segments against the night window.
func (c *HoursCalculator) workedAndNight(p punch.Punch) (workedMinutes, nightMinutes int, err error) {
	entryM, exitM := normalizedSpan(p)

	segments := [][2]int{{entryM, exitM}}
	if p.BreakStart != nil && p.BreakEnd != nil {
		bsM := minuteOfDay(*p.BreakStart)
		beM := minuteOfDay(*p.BreakEnd)
		if beM < bsM {
			return 0, 0, fmt.Errorf("break end precedes break start: %w", punch.ErrMalformedPunch)
		}
		// A break punched after midnight of an overnight shift sits
		// numerically before the entry; shift it into the next day.
		if bsM < entryM {
			bsM += minutesPerDay
			beM += minutesPerDay
		}
		// Clamp the break to the shift span before deducting.
		bsM = clamp(bsM, entryM, exitM)
		beM = clamp(beM, entryM, exitM)
		if beM > bsM {
			deducted := beM - bsM
			if deducted < c.cfg.MinBreakMinutes {
				// Recorded breaks shorter than the statutory minimum are
				// still deducted at the minimum.
				beM = bsM + c.cfg.MinBreakMinutes
				if beM > exitM {
					beM = exitM
				}
			}
			segments = [][2]int{{entryM, bsM}, {beM, exitM}}
		}
	}

	for _, seg := range segments {
		if seg[1] <= seg[0] {
			continue
		}
		workedMinutes += seg[1] - seg[0]
		nightMinutes += c.nightOverlap(seg[0], seg[1])
	}
	return workedMinutes, nightMinutes, nil
}

const minutesPerDay = 24 * 60

// normalizedSpan returns entry and exit as minutes on a timeline that starts
// at the punch date's midnight. An exit time-of-day earlier than the entry
// means checkout happened on the next calendar day, so 24h is added. Every
// other component relies on this normalization instead of re-deriving it.
func normalizedSpan(p punch.Punch) (entryM, exitM int) {
	entryM = minuteOfDay(*p.Entry)
	exitM = minuteOfDay(*p.Exit)
	if exitM < entryM {
		exitM += minutesPerDay
	}
	return entryM, exitM
}

// nightOverlap measures how many minutes of [startM, endM) fall inside the
// configured night window, on a 24h wheel: both the interval and the window
// may cross midnight, so the window is tested at adjacent day offsets too.
func (c *HoursCalculator) nightOverlap(startM, endM int) int {
	nsM := minuteOfDay(c.cfg.NightStart)
	neM := minuteOfDay(c.cfg.NightEnd)
	if neM <= nsM {
		neM += minutesPerDay
	}

	total := 0
	for _, offset := range []int{-minutesPerDay, 0, minutesPerDay} {
		total += overlap(startM, endM, nsM+offset, neM+offset)
	}
	return total
}

func overlap(a1, a2, b1, b2 int) int {
	lo := a1
	if b1 > lo {
		lo = b1
	}
	hi := a2
	if b2 < hi {
		hi = b2
	}
	if hi > lo {
		return hi - lo
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
