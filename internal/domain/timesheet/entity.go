package timesheet

import (
	"fmt"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
)

// ActualKind tags a ledger day's actual side: a recorded punch or a
// synthesized editable placeholder. It is an explicit variant, never inferred
// from identifier conventions.
type ActualKind string

const (
	ActualRecorded    ActualKind = "recorded"
	ActualPlaceholder ActualKind = "placeholder"
)

// LedgerActual is the actual side of a ledger day.
type LedgerActual struct {
	Kind  ActualKind
	Punch punch.Punch
}

func (a LedgerActual) IsRecorded() bool {
	return a.Kind == ActualRecorded
}

// LedgerDay is the reconciled result for one calendar date: the schedule's
// expectation merged with whatever was actually punched.
//
// OccupiedByOvernight is true when the previous calendar date holds a punch
// whose exit lands on this date. Such a date never gets an independent blank
// placeholder; it only surfaces when it has its own populated punch.
type LedgerDay struct {
	Date                time.Time
	Expected            schedule.ExpectedDay
	Actual              LedgerActual
	OccupiedByOvernight bool
}

// DayError attaches a failure to a single date so one bad record never
// blocks a full month's reconciliation.
type DayError struct {
	Date time.Time
	Err  error
}

// DayHours is the hours calculator's output for one ledger day.
type DayHours struct {
	Date                     time.Time
	WorkedMinutes            int
	NightMinutes             int
	OvertimeDiurnalMinutes   int
	OvertimeNocturnalMinutes int
	Absent                   bool
	PaidLeave                bool
	UnpaidLeave              bool
}

// PeriodTotals aggregates day hours over an arbitrary range for one
// employee. Derived only; never persisted as source of truth.
type PeriodTotals struct {
	WorkedMinutes            int
	NightMinutes             int
	OvertimeDiurnalMinutes   int
	OvertimeNocturnalMinutes int
	Absences                 int
	PaidLeaveDays            int
	UnpaidLeaveDays          int
	DaysWorked               int
}

// WorkdayConfig carries the company-wide parameters the engine needs. It is
// supplied as a value; the engine never reads environment or global state.
type WorkdayConfig struct {
	// Night window times-of-day; a window whose end is at or before its
	// start crosses midnight (the default 22:00-05:00 does).
	NightStart time.Time
	NightEnd   time.Time

	// MinBreakMinutes floors the deducted break when a shorter one was
	// recorded.
	MinBreakMinutes int

	DiurnalOvertimeRate   float64
	NocturnalOvertimeRate float64
}

func (c WorkdayConfig) Validate() error {
	if c.NightStart.IsZero() || c.NightEnd.IsZero() {
		return fmt.Errorf("night window is required: %w", ErrConfigurationInvalid)
	}
	if c.MinBreakMinutes < 0 {
		return fmt.Errorf("min break minutes must not be negative: %w", ErrConfigurationInvalid)
	}
	if c.DiurnalOvertimeRate <= 0 || c.NocturnalOvertimeRate <= 0 {
		return fmt.Errorf("overtime rates must be positive: %w", ErrConfigurationInvalid)
	}
	return nil
}
