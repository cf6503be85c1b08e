package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
	"github.com/villacare/timekeeper-backend-go/internal/fixtures"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
	schedulesvc "github.com/villacare/timekeeper-backend-go/internal/service/schedule"
)

const testEmployeeID = "employee-1"

func testReconciler(t *testing.T) *Reconciler {
	t.Helper()
	catalog, err := pattern.NewCatalog(fixtures.DefaultShiftPatterns())
	require.NoError(t, err)
	return NewReconciler(schedulesvc.NewResolver(catalog))
}

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := validator.ParseClock(s)
	require.NoError(t, err)
	return v
}

func clockPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	v := clock(t, s)
	return &v
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := validator.ParseDate(s)
	require.NoError(t, err)
	return v
}

func testAssignment(t *testing.T, patternID, effectiveFrom, entry, exit string) schedule.Assignment {
	t.Helper()
	return schedule.Assignment{
		ID:            "assignment-1",
		EmployeeID:    testEmployeeID,
		CompanyID:     "company-1",
		PatternID:     patternID,
		EntryTime:     clock(t, entry),
		ExitTime:      clock(t, exit),
		EffectiveFrom: date(t, effectiveFrom),
	}
}

func fullPunch(t *testing.T, day, entry, exit string) punch.Punch {
	t.Helper()
	return punch.Punch{
		ID:         "punch-" + day,
		EmployeeID: testEmployeeID,
		Date:       date(t, day),
		Entry:      clockPtr(t, entry),
		Exit:       clockPtr(t, exit),
	}
}

func ledgerByDate(days []timesheet.LedgerDay) map[string]timesheet.LedgerDay {
	out := make(map[string]timesheet.LedgerDay, len(days))
	for _, d := range days {
		out[d.Date.Format("2006-01-02")] = d
	}
	return out
}

func TestReconcile_OvernightShiftYieldsOneRow(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "12x36", "2025-06-01", "22:00", "06:00")
	punches := []punch.Punch{fullPunch(t, "2025-06-01", "22:00", "06:00")}

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-01"), date(t, "2025-06-02"), punches, assignment)
	require.NoError(t, err)
	assert.Empty(t, dayErrs)

	// The punch row on the 1st, nothing on the 2nd: the overnight exit
	// belongs to the entry's day.
	require.Len(t, ledger, 1)
	assert.Equal(t, "2025-06-01", ledger[0].Date.Format("2006-01-02"))
	assert.Equal(t, timesheet.ActualRecorded, ledger[0].Actual.Kind)
	assert.True(t, ledger[0].Actual.Punch.IsOvernight())
}

func TestReconcile_OccupiedDateWithOwnPunchSurfaces(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "fixed-night", "2025-06-01", "22:00", "06:00")
	punches := []punch.Punch{
		fullPunch(t, "2025-06-01", "22:00", "06:00"),
		fullPunch(t, "2025-06-02", "22:00", "06:00"),
	}

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-01"), date(t, "2025-06-02"), punches, assignment)
	require.NoError(t, err)
	assert.Empty(t, dayErrs)

	require.Len(t, ledger, 2)
	byDate := ledgerByDate(ledger)
	second := byDate["2025-06-02"]
	assert.Equal(t, timesheet.ActualRecorded, second.Actual.Kind)
	assert.True(t, second.OccupiedByOvernight)
}

func TestReconcile_LookbackBeforeRangeStart(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "fixed-night", "2025-05-01", "22:00", "06:00")
	// Overnight punch on the eve of the range claims the range's first day.
	punches := []punch.Punch{fullPunch(t, "2025-05-31", "22:00", "06:00")}

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-01"), date(t, "2025-06-01"), punches, assignment)
	require.NoError(t, err)
	assert.Empty(t, dayErrs)
	assert.Empty(t, ledger)
}

func TestReconcile_PlaceholdersForUnworkedDays(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-02", "08:00", "17:00")

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-02"), date(t, "2025-06-08"), nil, assignment)
	require.NoError(t, err)
	assert.Empty(t, dayErrs)

	// Every day of the week gets an editable placeholder, rest days included.
	require.Len(t, ledger, 7)
	for _, day := range ledger {
		assert.Equal(t, timesheet.ActualPlaceholder, day.Actual.Kind)
		assert.Equal(t, testEmployeeID, day.Actual.Punch.EmployeeID)
		assert.True(t, day.Actual.Punch.IsEmpty())
	}
}

func TestReconcile_EmptyPunchDoesNotSuppressPlaceholder(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-02", "08:00", "17:00")
	punches := []punch.Punch{{
		ID:         "blank",
		EmployeeID: testEmployeeID,
		Date:       date(t, "2025-06-03"),
	}}

	ledger, _, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-03"), date(t, "2025-06-03"), punches, assignment)
	require.NoError(t, err)

	require.Len(t, ledger, 1)
	assert.Equal(t, timesheet.ActualPlaceholder, ledger[0].Actual.Kind)
}

func TestReconcile_DatesBeforeEffectiveFromReportedPerDay(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-04", "08:00", "17:00")

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-02"), date(t, "2025-06-05"), nil, assignment)
	require.NoError(t, err)

	// The two undefined days land in the side list; the rest still resolve.
	require.Len(t, dayErrs, 2)
	for _, de := range dayErrs {
		assert.ErrorIs(t, de.Err, schedule.ErrUndefinedSchedule)
	}
	assert.Len(t, ledger, 2)
}

func TestReconcile_PunchedDayWithoutScheduleStillSurfaces(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-04", "08:00", "17:00")
	punches := []punch.Punch{fullPunch(t, "2025-06-02", "08:00", "17:00")}

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-02"), date(t, "2025-06-02"), punches, assignment)
	require.NoError(t, err)

	require.Len(t, dayErrs, 1)
	assert.ErrorIs(t, dayErrs[0].Err, schedule.ErrUndefinedSchedule)

	// The punched record is kept with an empty expectation.
	require.Len(t, ledger, 1)
	assert.Equal(t, timesheet.ActualRecorded, ledger[0].Actual.Kind)
	assert.False(t, ledger[0].Expected.MustWork)
}

func TestReconcile_MalformedBreakReported(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-02", "08:00", "17:00")
	p := fullPunch(t, "2025-06-02", "08:00", "17:00")
	p.BreakStart = clockPtr(t, "12:00")
	// Break end missing: structurally bad.

	ledger, dayErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-02"), date(t, "2025-06-02"), []punch.Punch{p}, assignment)
	require.NoError(t, err)

	require.Len(t, dayErrs, 1)
	assert.ErrorIs(t, dayErrs[0].Err, punch.ErrMalformedPunch)
	// The row still appears so the day can be corrected.
	assert.Len(t, ledger, 1)
}

func TestReconcile_InvalidRange(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-02", "08:00", "17:00")

	_, _, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-10"), date(t, "2025-06-05"), nil, assignment)
	assert.ErrorIs(t, err, schedule.ErrInvalidRange)
}

func TestReconcile_Idempotent(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "12x36", "2025-06-01", "22:00", "06:00")
	punches := []punch.Punch{
		fullPunch(t, "2025-06-01", "22:00", "06:00"),
		fullPunch(t, "2025-06-03", "22:00", "05:30"),
	}

	first, firstErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-01"), date(t, "2025-06-07"), punches, assignment)
	require.NoError(t, err)
	second, secondErrs, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-01"), date(t, "2025-06-07"), punches, assignment)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstErrs, secondErrs)
}

func TestReconcile_IgnoresOtherEmployees(t *testing.T) {
	t.Parallel()

	r := testReconciler(t)
	assignment := testAssignment(t, "5x2", "2025-06-02", "08:00", "17:00")
	foreign := fullPunch(t, "2025-06-02", "08:00", "17:00")
	foreign.EmployeeID = "someone-else"

	ledger, _, err := r.Reconcile(testEmployeeID,
		date(t, "2025-06-02"), date(t, "2025-06-02"), []punch.Punch{foreign}, assignment)
	require.NoError(t, err)

	require.Len(t, ledger, 1)
	assert.Equal(t, timesheet.ActualPlaceholder, ledger[0].Actual.Kind)
}
