package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/leave"
	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
	schedulesvc "github.com/villacare/timekeeper-backend-go/internal/service/schedule"
)

type timesheetServiceImpl struct {
	punchRepo      punch.PunchRepository
	assignmentRepo schedule.AssignmentRepository
	leaveRepo      leave.LeaveRepository
	reconciler     *Reconciler
	calculator     *HoursCalculator
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	assignmentRepo schedule.AssignmentRepository,
	leaveRepo leave.LeaveRepository,
	reconciler *Reconciler,
	calculator *HoursCalculator,
) timesheet.TimesheetService {
	return &timesheetServiceImpl{
		punchRepo:      punchRepo,
		assignmentRepo: assignmentRepo,
		leaveRepo:      leaveRepo,
		reconciler:     reconciler,
		calculator:     calculator,
	}
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) GetTimesheet(ctx context.Context, employeeID string, start, end time.Time) (timesheet.TimesheetResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	days, dayErrs, err := s.buildLedger(ctx, employeeID, companyID, start, end)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.TimesheetResponse{
		EmployeeID: employeeID,
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		Days:       days,
		DayErrors:  mapDayErrors(dayErrs),
	}, nil
}

// GetPeriodTotals implements timesheet.TimesheetService.
func (s *timesheetServiceImpl) GetPeriodTotals(ctx context.Context, employeeID string, year int, month time.Month) (timesheet.PeriodTotalsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return timesheet.PeriodTotalsResponse{}, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	totals, dayErrs, err := s.ComputeTotals(ctx, employeeID, companyID, start, end)
	if err != nil {
		return timesheet.PeriodTotalsResponse{}, err
	}

	return timesheet.PeriodTotalsResponse{
		EmployeeID:             employeeID,
		PeriodStart:            start.Format("2006-01-02"),
		PeriodEnd:              end.Format("2006-01-02"),
		WorkedHours:            minutesToHours(totals.WorkedMinutes),
		NightHours:             minutesToHours(totals.NightMinutes),
		OvertimeDiurnalHours:   minutesToHours(totals.OvertimeDiurnalMinutes),
		OvertimeNocturnalHours: minutesToHours(totals.OvertimeNocturnalMinutes),
		Absences:               totals.Absences,
		PaidLeaveDays:          totals.PaidLeaveDays,
		UnpaidLeaveDays:        totals.UnpaidLeaveDays,
		DaysWorked:             totals.DaysWorked,
		DayErrors:              mapDayErrors(dayErrs),
	}, nil
}

// ComputeTotals runs the full reconcile/compute/aggregate pipeline for one
// employee without touching request-scoped claims, so report jobs can call it
// with an explicit company ID.
func (s *timesheetServiceImpl) ComputeTotals(ctx context.Context, employeeID, companyID string, start, end time.Time) (timesheet.PeriodTotals, []timesheet.DayError, error) {
	_, dayErrs, hours, err := s.pipeline(ctx, employeeID, companyID, start, end)
	if err != nil {
		return timesheet.PeriodTotals{}, nil, err
	}
	return Aggregate(hours), dayErrs, nil
}

func (s *timesheetServiceImpl) buildLedger(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]timesheet.LedgerDayResponse, []timesheet.DayError, error) {
	ledger, dayErrs, hours, err := s.pipeline(ctx, employeeID, companyID, start, end)
	if err != nil {
		return nil, nil, err
	}

	hoursByDate := make(map[string]timesheet.DayHours, len(hours))
	for _, h := range hours {
		hoursByDate[h.Date.Format("2006-01-02")] = h
	}

	responses := make([]timesheet.LedgerDayResponse, 0, len(ledger))
	for _, day := range ledger {
		resp := timesheet.LedgerDayResponse{
			Date:                day.Date.Format("2006-01-02"),
			Expected:            schedulesvc.MapExpectedDayToResponse(day.Expected),
			ActualKind:          string(day.Actual.Kind),
			Actual:              mapPunchToResponse(day.Actual.Punch),
			OccupiedByOvernight: day.OccupiedByOvernight,
		}
		if h, ok := hoursByDate[resp.Date]; ok {
			resp.Hours = &timesheet.DayHoursResponse{
				WorkedMinutes:            h.WorkedMinutes,
				NightMinutes:             h.NightMinutes,
				OvertimeDiurnalMinutes:   h.OvertimeDiurnalMinutes,
				OvertimeNocturnalMinutes: h.OvertimeNocturnalMinutes,
				Absent:                   h.Absent,
				PaidLeave:                h.PaidLeave,
				UnpaidLeave:              h.UnpaidLeave,
			}
		}
		responses = append(responses, resp)
	}
	return responses, dayErrs, nil
}

// pipeline fetches the inputs and runs reconcile + per-day hours. Days whose
// hours computation fails are reported in the side list and excluded from the
// hours slice; the rest of the range still computes.
func (s *timesheetServiceImpl) pipeline(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]timesheet.LedgerDay, []timesheet.DayError, []timesheet.DayHours, error) {
	assignment, err := s.assignmentRepo.GetActive(ctx, employeeID, start, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, schedule.ErrAssignmentNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to get active assignment: %w", err)
	}

	// Fetch one extra day back so an overnight punch on the eve of the range
	// can claim the range's first day.
	punches, err := s.punchRepo.ListByRange(ctx, employeeID, start.AddDate(0, 0, -1), end, companyID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list punches: %w", err)
	}

	leaveDays, err := s.leaveRepo.ListByRange(ctx, employeeID, start, end, companyID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list leave days: %w", err)
	}
	leaveByDate := make(map[string]leave.Day, len(leaveDays))
	for _, l := range leaveDays {
		leaveByDate[l.Date.Format("2006-01-02")] = l
	}

	ledger, dayErrs, err := s.reconciler.Reconcile(employeeID, start, end, punches, assignment)
	if err != nil {
		return nil, nil, nil, err
	}

	hours := make([]timesheet.DayHours, 0, len(ledger))
	for _, day := range ledger {
		var override *leave.Day
		if l, ok := leaveByDate[day.Date.Format("2006-01-02")]; ok {
			override = &l
		}
		h, err := s.calculator.Compute(day, override)
		if err != nil {
			dayErrs = append(dayErrs, timesheet.DayError{Date: day.Date, Err: err})
			continue
		}
		hours = append(hours, h)
	}

	return ledger, dayErrs, hours, nil
}

func mapDayErrors(dayErrs []timesheet.DayError) []timesheet.DayErrorResponse {
	if len(dayErrs) == 0 {
		return nil
	}
	out := make([]timesheet.DayErrorResponse, 0, len(dayErrs))
	for _, de := range dayErrs {
		out = append(out, timesheet.DayErrorResponse{
			Date:  de.Date.Format("2006-01-02"),
			Error: de.Err.Error(),
		})
	}
	return out
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	resp := punch.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.Date.Format("2006-01-02"),
		Notes:      p.Notes,
		Overnight:  p.IsOvernight(),
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	if p.Entry != nil {
		v := p.Entry.Format("15:04")
		resp.Entry = &v
	}
	if p.BreakStart != nil {
		v := p.BreakStart.Format("15:04")
		resp.BreakStart = &v
	}
	if p.BreakEnd != nil {
		v := p.BreakEnd.Format("15:04")
		resp.BreakEnd = &v
	}
	if p.Exit != nil {
		v := p.Exit.Format("15:04")
		resp.Exit = &v
	}
	return resp
}

func minutesToHours(m int) float64 {
	return float64(m) / 60
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}
