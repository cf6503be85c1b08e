package timesheet

import "github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"

// Aggregate sums per-day hours into period totals. It is a pure fold: totals
// are always derived from the day results, never stored as source of truth.
func Aggregate(days []timesheet.DayHours) timesheet.PeriodTotals {
	var totals timesheet.PeriodTotals
	for _, d := range days {
		totals.WorkedMinutes += d.WorkedMinutes
		totals.NightMinutes += d.NightMinutes
		totals.OvertimeDiurnalMinutes += d.OvertimeDiurnalMinutes
		totals.OvertimeNocturnalMinutes += d.OvertimeNocturnalMinutes
		if d.Absent {
			totals.Absences++
		}
		if d.PaidLeave {
			totals.PaidLeaveDays++
		}
		if d.UnpaidLeave {
			totals.UnpaidLeaveDays++
		}
		if d.WorkedMinutes > 0 {
			totals.DaysWorked++
		}
	}
	return totals
}
