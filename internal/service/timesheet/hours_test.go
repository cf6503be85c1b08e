package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villacare/timekeeper-backend-go/internal/domain/leave"
	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
)

func testConfig(t *testing.T) timesheet.WorkdayConfig {
	t.Helper()
	return timesheet.WorkdayConfig{
		NightStart:            clock(t, "22:00"),
		NightEnd:              clock(t, "05:00"),
		MinBreakMinutes:       30,
		DiurnalOvertimeRate:   1.25,
		NocturnalOvertimeRate: 1.5,
	}
}

func testCalculator(t *testing.T) *HoursCalculator {
	t.Helper()
	c, err := NewHoursCalculator(testConfig(t))
	require.NoError(t, err)
	return c
}

func workedDay(t *testing.T, day string, expectedHours float64, p punch.Punch) timesheet.LedgerDay {
	t.Helper()
	return timesheet.LedgerDay{
		Date: date(t, day),
		Expected: schedule.ExpectedDay{
			Date:          date(t, day),
			MustWork:      expectedHours > 0,
			ExpectedHours: expectedHours,
		},
		Actual: timesheet.LedgerActual{Kind: timesheet.ActualRecorded, Punch: p},
	}
}

func placeholderDay(t *testing.T, day string, mustWork bool, expectedHours float64) timesheet.LedgerDay {
	t.Helper()
	return timesheet.LedgerDay{
		Date: date(t, day),
		Expected: schedule.ExpectedDay{
			Date:          date(t, day),
			MustWork:      mustWork,
			ExpectedHours: expectedHours,
		},
		Actual: timesheet.LedgerActual{
			Kind:  timesheet.ActualPlaceholder,
			Punch: punch.Punch{EmployeeID: testEmployeeID, Date: date(t, day)},
		},
	}
}

func TestCompute_PlainDayShift(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := workedDay(t, "2025-06-02", 8, fullPunch(t, "2025-06-02", "09:00", "17:00"))

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.Equal(t, 480, hours.WorkedMinutes)
	assert.Zero(t, hours.NightMinutes)
	assert.Zero(t, hours.OvertimeDiurnalMinutes)
	assert.Zero(t, hours.OvertimeNocturnalMinutes)
	assert.False(t, hours.Absent)
}

func TestCompute_OvernightShift(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := workedDay(t, "2025-06-01", 8, fullPunch(t, "2025-06-01", "22:00", "06:00"))

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	// 22:00 to 06:00 next day is eight hours, seven of them inside the
	// 22:00-05:00 night window.
	assert.Equal(t, 480, hours.WorkedMinutes)
	assert.Equal(t, 420, hours.NightMinutes)
	assert.Zero(t, hours.OvertimeDiurnalMinutes)
	assert.Zero(t, hours.OvertimeNocturnalMinutes)
}

func TestCompute_BreakDeducted(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	p := fullPunch(t, "2025-06-02", "08:00", "17:00")
	p.BreakStart = clockPtr(t, "12:00")
	p.BreakEnd = clockPtr(t, "13:00")
	day := workedDay(t, "2025-06-02", 8, p)

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.Equal(t, 480, hours.WorkedMinutes)
	assert.Zero(t, hours.OvertimeDiurnalMinutes)
}

func TestCompute_ShortBreakFlooredToMinimum(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	p := fullPunch(t, "2025-06-02", "08:00", "17:00")
	p.BreakStart = clockPtr(t, "12:00")
	p.BreakEnd = clockPtr(t, "12:10")
	day := workedDay(t, "2025-06-02", 8, p)

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	// A ten-minute recorded break is still deducted at the 30-minute floor:
	// 540 span minus 30 leaves 510, 30 of which exceed the expected 480.
	assert.Equal(t, 510, hours.WorkedMinutes)
	assert.Equal(t, 30, hours.OvertimeDiurnalMinutes)
	assert.Zero(t, hours.OvertimeNocturnalMinutes)
}

func TestCompute_OvertimeNocturnalTail(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := workedDay(t, "2025-06-02", 8, fullPunch(t, "2025-06-02", "14:00", "23:30"))

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.Equal(t, 570, hours.WorkedMinutes)
	assert.Equal(t, 90, hours.NightMinutes)
	// The 90 excess minutes all fall after 22:00.
	assert.Zero(t, hours.OvertimeDiurnalMinutes)
	assert.Equal(t, 90, hours.OvertimeNocturnalMinutes)
}

func TestCompute_OvertimeSplitAcrossNightStart(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := workedDay(t, "2025-06-02", 8, fullPunch(t, "2025-06-02", "13:00", "22:30"))

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.Equal(t, 570, hours.WorkedMinutes)
	// Excess tail is 21:00-22:30: one diurnal hour, thirty nocturnal minutes.
	assert.Equal(t, 60, hours.OvertimeDiurnalMinutes)
	assert.Equal(t, 30, hours.OvertimeNocturnalMinutes)
}

func TestCompute_RestDayWorkIsAllOvertime(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := workedDay(t, "2025-06-07", 0, fullPunch(t, "2025-06-07", "08:00", "12:00"))
	day.Expected.MustWork = false

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.Equal(t, 240, hours.WorkedMinutes)
	assert.Equal(t, 240, hours.OvertimeDiurnalMinutes)
	assert.False(t, hours.Absent)
}

func TestCompute_AbsenceOnUnpunchedWorkday(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := placeholderDay(t, "2025-06-02", true, 8)

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.True(t, hours.Absent)
	assert.Zero(t, hours.WorkedMinutes)
}

func TestCompute_NoAbsenceOnRestDay(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	day := placeholderDay(t, "2025-06-07", false, 0)

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.False(t, hours.Absent)
}

func TestCompute_LeaveOverrides(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)

	paid := &leave.Day{EmployeeID: testEmployeeID, Date: date(t, "2025-06-02"), Paid: true}
	hours, err := calc.Compute(placeholderDay(t, "2025-06-02", true, 8), paid)
	require.NoError(t, err)
	assert.True(t, hours.PaidLeave)
	assert.False(t, hours.Absent)

	unpaid := &leave.Day{EmployeeID: testEmployeeID, Date: date(t, "2025-06-03"), Paid: false}
	hours, err = calc.Compute(placeholderDay(t, "2025-06-03", true, 8), unpaid)
	require.NoError(t, err)
	assert.True(t, hours.UnpaidLeave)
	assert.False(t, hours.Absent)
}

func TestCompute_LeaveIgnoredWhenWorked(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	override := &leave.Day{EmployeeID: testEmployeeID, Date: date(t, "2025-06-02"), Paid: true}
	day := workedDay(t, "2025-06-02", 8, fullPunch(t, "2025-06-02", "09:00", "17:00"))

	hours, err := calc.Compute(day, override)
	require.NoError(t, err)
	assert.Equal(t, 480, hours.WorkedMinutes)
	assert.False(t, hours.PaidLeave)
}

func TestCompute_PartialPunchIsNotAbsence(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	p := punch.Punch{
		EmployeeID: testEmployeeID,
		Date:       date(t, "2025-06-02"),
		Entry:      clockPtr(t, "09:00"),
	}
	day := workedDay(t, "2025-06-02", 8, p)

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	assert.Zero(t, hours.WorkedMinutes)
	assert.False(t, hours.Absent)
}

func TestCompute_MalformedBreakFails(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	p := fullPunch(t, "2025-06-02", "08:00", "17:00")
	p.BreakStart = clockPtr(t, "13:00")
	p.BreakEnd = clockPtr(t, "12:00")
	day := workedDay(t, "2025-06-02", 8, p)

	_, err := calc.Compute(day, nil)
	assert.ErrorIs(t, err, punch.ErrMalformedPunch)
}

func TestCompute_OvernightBreakAfterMidnight(t *testing.T) {
	t.Parallel()

	calc := testCalculator(t)
	p := fullPunch(t, "2025-06-01", "22:00", "06:00")
	p.BreakStart = clockPtr(t, "02:00")
	p.BreakEnd = clockPtr(t, "02:30")
	day := workedDay(t, "2025-06-01", 8, p)

	hours, err := calc.Compute(day, nil)
	require.NoError(t, err)
	// The break sits after midnight, inside the shifted span.
	assert.Equal(t, 450, hours.WorkedMinutes)
	assert.Equal(t, 390, hours.NightMinutes)
}

func TestNewHoursCalculator_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.DiurnalOvertimeRate = 0
	_, err := NewHoursCalculator(cfg)
	assert.ErrorIs(t, err, timesheet.ErrConfigurationInvalid)
}
