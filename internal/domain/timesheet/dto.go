package timesheet

import (
	"context"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
)

// TimesheetService is the engine's orchestration surface: it fetches the
// employee's assignment, punches and leave overrides, then runs the pure
// reconcile/compute/aggregate pipeline over them.
type TimesheetService interface {
	GetTimesheet(ctx context.Context, employeeID string, start, end time.Time) (TimesheetResponse, error)
	GetPeriodTotals(ctx context.Context, employeeID string, year int, month time.Month) (PeriodTotalsResponse, error)

	// ComputeTotals is the claims-free entry point for background jobs, which
	// carry an explicit company ID instead of request-scoped claims.
	ComputeTotals(ctx context.Context, employeeID, companyID string, start, end time.Time) (PeriodTotals, []DayError, error)
}

type LedgerDayResponse struct {
	Date                string                       `json:"date"`
	Expected            schedule.ExpectedDayResponse `json:"expected"`
	ActualKind          string                       `json:"actual_kind"`
	Actual              punch.PunchResponse          `json:"actual"`
	OccupiedByOvernight bool                         `json:"occupied_by_overnight"`
	Hours               *DayHoursResponse            `json:"hours,omitempty"`
}

type DayHoursResponse struct {
	WorkedMinutes            int  `json:"worked_minutes"`
	NightMinutes             int  `json:"night_minutes"`
	OvertimeDiurnalMinutes   int  `json:"overtime_diurnal_minutes"`
	OvertimeNocturnalMinutes int  `json:"overtime_nocturnal_minutes"`
	Absent                   bool `json:"absent"`
	PaidLeave                bool `json:"paid_leave"`
	UnpaidLeave              bool `json:"unpaid_leave"`
}

type DayErrorResponse struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

type TimesheetResponse struct {
	EmployeeID string              `json:"employee_id"`
	StartDate  string              `json:"start_date"`
	EndDate    string              `json:"end_date"`
	Days       []LedgerDayResponse `json:"days"`
	DayErrors  []DayErrorResponse  `json:"day_errors,omitempty"`
}

type PeriodTotalsResponse struct {
	EmployeeID               string             `json:"employee_id"`
	PeriodStart              string             `json:"period_start"`
	PeriodEnd                string             `json:"period_end"`
	WorkedHours              float64            `json:"worked_hours"`
	NightHours               float64            `json:"night_hours"`
	OvertimeDiurnalHours     float64            `json:"overtime_diurnal_hours"`
	OvertimeNocturnalHours   float64            `json:"overtime_nocturnal_hours"`
	Absences                 int                `json:"absences"`
	PaidLeaveDays            int                `json:"paid_leave_days"`
	UnpaidLeaveDays          int                `json:"unpaid_leave_days"`
	DaysWorked               int                `json:"days_worked"`
	DayErrors                []DayErrorResponse `json:"day_errors,omitempty"`
}
