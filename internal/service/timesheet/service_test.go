package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villacare/timekeeper-backend-go/internal/domain/leave"
	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/fixtures"
	schedulesvc "github.com/villacare/timekeeper-backend-go/internal/service/schedule"
)

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) Upsert(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) GetByID(ctx context.Context, id, companyID string) (punch.Punch, error) {
	for _, p := range f.punches {
		if p.ID == id {
			return p, nil
		}
	}
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*punch.Punch, error) {
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && p.Date.Equal(date) {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakePunchRepo) ListByRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.Date.Before(start) && !p.Date.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) Delete(ctx context.Context, id, companyID string) error {
	return nil
}

type fakeAssignmentRepo struct {
	assignment schedule.Assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	return a, nil
}

func (f *fakeAssignmentRepo) GetActive(ctx context.Context, employeeID string, asOf time.Time, companyID string) (schedule.Assignment, error) {
	return f.assignment, nil
}

func (f *fakeAssignmentRepo) Supersede(ctx context.Context, id string, at time.Time, companyID string) error {
	return nil
}

func (f *fakeAssignmentRepo) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]schedule.Assignment, error) {
	return []schedule.Assignment{f.assignment}, nil
}

type fakeLeaveRepo struct {
	days []leave.Day
}

func (f *fakeLeaveRepo) ListByRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]leave.Day, error) {
	return f.days, nil
}

func newTestService(t *testing.T, assignment schedule.Assignment, punches []punch.Punch, leaveDays []leave.Day) *timesheetServiceImpl {
	t.Helper()
	catalog, err := pattern.NewCatalog(fixtures.DefaultShiftPatterns())
	require.NoError(t, err)

	calculator, err := NewHoursCalculator(testConfig(t))
	require.NoError(t, err)

	svc := NewTimesheetService(
		&fakePunchRepo{punches: punches},
		&fakeAssignmentRepo{assignment: assignment},
		&fakeLeaveRepo{days: leaveDays},
		NewReconciler(schedulesvc.NewResolver(catalog)),
		calculator,
	)
	return svc.(*timesheetServiceImpl)
}

func TestComputeTotals_FiveByTwoWeek(t *testing.T) {
	t.Parallel()

	assignment := testAssignment(t, "5x2", "2025-06-02", "09:00", "17:00")
	punches := []punch.Punch{
		fullPunch(t, "2025-06-02", "09:00", "17:00"),
		fullPunch(t, "2025-06-03", "09:00", "17:00"),
		fullPunch(t, "2025-06-04", "09:00", "17:00"),
		fullPunch(t, "2025-06-05", "09:00", "17:00"),
	}
	leaveDays := []leave.Day{
		{EmployeeID: testEmployeeID, Date: date(t, "2025-06-06"), Paid: true},
	}

	svc := newTestService(t, assignment, punches, leaveDays)

	totals, dayErrs, err := svc.ComputeTotals(context.Background(),
		testEmployeeID, "company-1", date(t, "2025-06-02"), date(t, "2025-06-08"))
	require.NoError(t, err)
	assert.Empty(t, dayErrs)

	assert.Equal(t, 4*480, totals.WorkedMinutes)
	assert.Equal(t, 4, totals.DaysWorked)
	assert.Equal(t, 1, totals.PaidLeaveDays)
	assert.Zero(t, totals.Absences)
	assert.Zero(t, totals.NightMinutes)
}

func TestComputeTotals_OvernightTwelveByThirtySix(t *testing.T) {
	t.Parallel()

	assignment := testAssignment(t, "12x36", "2025-06-01", "22:00", "06:00")
	punches := []punch.Punch{
		fullPunch(t, "2025-06-01", "22:00", "06:00"),
		fullPunch(t, "2025-06-03", "22:00", "06:00"),
	}

	svc := newTestService(t, assignment, punches, nil)

	totals, dayErrs, err := svc.ComputeTotals(context.Background(),
		testEmployeeID, "company-1", date(t, "2025-06-01"), date(t, "2025-06-04"))
	require.NoError(t, err)
	assert.Empty(t, dayErrs)

	// Two overnight shifts, each eight hours with seven in the night window.
	// The rest days following each shift are claimed by the overnight exits.
	assert.Equal(t, 960, totals.WorkedMinutes)
	assert.Equal(t, 840, totals.NightMinutes)
	assert.Equal(t, 2, totals.DaysWorked)
	assert.Zero(t, totals.Absences)
}

func TestComputeTotals_MissedWorkdayIsAbsence(t *testing.T) {
	t.Parallel()

	assignment := testAssignment(t, "5x2", "2025-06-02", "09:00", "17:00")
	punches := []punch.Punch{
		fullPunch(t, "2025-06-02", "09:00", "17:00"),
	}

	svc := newTestService(t, assignment, punches, nil)

	totals, dayErrs, err := svc.ComputeTotals(context.Background(),
		testEmployeeID, "company-1", date(t, "2025-06-02"), date(t, "2025-06-03"))
	require.NoError(t, err)
	assert.Empty(t, dayErrs)

	assert.Equal(t, 480, totals.WorkedMinutes)
	assert.Equal(t, 1, totals.Absences)
}

func TestComputeTotals_MalformedPunchIsolatedToItsDay(t *testing.T) {
	t.Parallel()

	assignment := testAssignment(t, "5x2", "2025-06-02", "09:00", "17:00")
	bad := fullPunch(t, "2025-06-03", "09:00", "17:00")
	bad.BreakStart = clockPtr(t, "13:00")
	bad.BreakEnd = clockPtr(t, "12:00")
	punches := []punch.Punch{
		fullPunch(t, "2025-06-02", "09:00", "17:00"),
		bad,
		fullPunch(t, "2025-06-04", "09:00", "17:00"),
	}

	svc := newTestService(t, assignment, punches, nil)

	totals, dayErrs, err := svc.ComputeTotals(context.Background(),
		testEmployeeID, "company-1", date(t, "2025-06-02"), date(t, "2025-06-04"))
	require.NoError(t, err)

	// The bad day is reported twice (structure check and hours computation)
	// but never blocks the healthy days.
	require.NotEmpty(t, dayErrs)
	for _, de := range dayErrs {
		assert.Equal(t, "2025-06-03", de.Date.Format("2006-01-02"))
	}
	assert.Equal(t, 960, totals.WorkedMinutes)
	assert.Equal(t, 2, totals.DaysWorked)
}
