package schedule

import "time"

// Assignment binds an employee to a shift pattern with concrete anchor times
// and an effective start date. EffectiveFrom is day zero of the pattern's
// cycle; dates before it have no defined schedule. Assignments are superseded
// on reassignment, never mutated, so historical resolution stays stable.
type Assignment struct {
	ID         string
	EmployeeID string
	CompanyID  string
	PatternID  string

	// Anchor times-of-day, "15:04" precision. Break fields are optional.
	EntryTime  time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	ExitTime   time.Time

	// EffectiveFrom is a calendar date at midnight UTC.
	EffectiveFrom time.Time
	SupersededAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpectedDay is the schedule's prediction for one calendar date. It is
// derived, never stored: a pure function of (assignment, date).
type ExpectedDay struct {
	Date     time.Time
	MustWork bool

	// ExpectedHours comes from the pattern's cycle slot; zero on rest days.
	ExpectedHours float64

	ExpectedEntry      *time.Time
	ExpectedBreakStart *time.Time
	ExpectedBreakEnd   *time.Time
	ExpectedExit       *time.Time
}
