package punch

import "time"

// Punch is a recorded entry/break/exit set for one employee on one calendar
// date. At most one punch exists per (employee, date). An exit time-of-day
// numerically earlier than the entry denotes an overnight shift whose
// checkout lands on the following calendar date.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string

	// Date is the working day, midnight UTC.
	Date time.Time

	// Times-of-day, "15:04" precision. Any subset may be present.
	Entry      *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	Exit       *time.Time

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEmpty reports whether the punch carries no clock times at all. Empty
// punches are treated as "no record" when reconciling, so a stale blank row
// never suppresses a fresh placeholder.
func (p Punch) IsEmpty() bool {
	return p.Entry == nil && p.BreakStart == nil && p.BreakEnd == nil && p.Exit == nil
}

// HasTimes reports whether entry or exit is populated; only such punches
// count as an actual record for a ledger day.
func (p Punch) HasTimes() bool {
	return p.Entry != nil || p.Exit != nil
}

// IsOvernight reports whether the punch crosses midnight: both entry and
// exit present and the exit time-of-day is earlier than the entry.
func (p Punch) IsOvernight() bool {
	if p.Entry == nil || p.Exit == nil {
		return false
	}
	return minuteOfDay(*p.Exit) < minuteOfDay(*p.Entry)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
