package timesheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
)

// Reconciler merges expected schedule output with recorded punches into one
// canonical ledger row per calendar day, resolving overnight-shift day
// attribution. It is pure computation over the inputs it is given: re-running
// it with identical punches and assignment yields identical output.
type Reconciler struct {
	resolver schedule.Resolver
}

func NewReconciler(resolver schedule.Resolver) *Reconciler {
	return &Reconciler{resolver: resolver}
}

// Reconcile covers every calendar date in [start, end]. Dates claimed by the
// previous day's overnight punch are suppressed unless they carry their own
// populated punch; rest days and unworked days get an editable placeholder.
// Per-day failures land in the returned side list so one bad record never
// aborts the range.
func (r *Reconciler) Reconcile(
	employeeID string,
	start, end time.Time,
	punches []punch.Punch,
	assignment schedule.Assignment,
) ([]timesheet.LedgerDay, []timesheet.DayError, error) {
	startDay := dateOnly(start)
	endDay := dateOnly(end)
	if endDay.Before(startDay) {
		return nil, nil, schedule.ErrInvalidRange
	}

	byDate := make(map[string]punch.Punch, len(punches))
	for _, p := range punches {
		if p.EmployeeID != employeeID {
			continue
		}
		byDate[dateKey(p.Date)] = p
	}

	// Overnight lookback starts one day before the range so a punch on
	// start-1 can claim the range's first day.
	occupied := make(map[string]bool)
	for day := startDay.AddDate(0, 0, -1); !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if p, ok := byDate[dateKey(day)]; ok && p.IsOvernight() {
			occupied[dateKey(day.AddDate(0, 0, 1))] = true
		}
	}

	var ledger []timesheet.LedgerDay
	var dayErrs []timesheet.DayError
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := dateKey(day)

		expected, resolveErr := r.resolver.Resolve(assignment, day)
		if resolveErr != nil && !errors.Is(resolveErr, schedule.ErrUndefinedSchedule) {
			return nil, nil, resolveErr
		}

		p, havePunch := byDate[key]
		populated := havePunch && p.HasTimes()

		if resolveErr != nil {
			dayErrs = append(dayErrs, timesheet.DayError{Date: day, Err: resolveErr})
			if !populated {
				// No schedule and nothing punched: nothing to surface.
				continue
			}
			expected = schedule.ExpectedDay{Date: day}
		}

		switch {
		case populated:
			// A real punch always wins, even on an overnight-occupied date.
			if err := checkPunch(p); err != nil {
				dayErrs = append(dayErrs, timesheet.DayError{Date: day, Err: err})
			}
			ledger = append(ledger, timesheet.LedgerDay{
				Date:                day,
				Expected:            expected,
				Actual:              timesheet.LedgerActual{Kind: timesheet.ActualRecorded, Punch: p},
				OccupiedByOvernight: occupied[key],
			})
		case occupied[key]:
			// Already represented by the prior day's overnight record; no
			// independent blank editable row.
		default:
			ledger = append(ledger, timesheet.LedgerDay{
				Date:     day,
				Expected: expected,
				Actual: timesheet.LedgerActual{
					Kind:  timesheet.ActualPlaceholder,
					Punch: punch.Punch{EmployeeID: employeeID, Date: day},
				},
			})
		}
	}

	return ledger, dayErrs, nil
}

// checkPunch flags structurally bad punches the DTO layer cannot catch, such
// as rows imported or corrected outside the API.
func checkPunch(p punch.Punch) error {
	if (p.BreakStart == nil) != (p.BreakEnd == nil) {
		return fmt.Errorf("break has only one endpoint: %w", punch.ErrMalformedPunch)
	}
	if p.BreakStart != nil && p.BreakEnd != nil {
		if minuteOfDay(*p.BreakEnd) < minuteOfDay(*p.BreakStart) {
			return fmt.Errorf("break end precedes break start: %w", punch.ErrMalformedPunch)
		}
	}
	return nil
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
