package report

import (
	"bytes"
	"context"

	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

// ReportService produces company-wide monthly summaries on top of the
// per-employee timesheet pipeline.
type ReportService interface {
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ExportMonthlyReport renders the report as an XLSX workbook and returns
	// the buffer plus a suggested filename.
	ExportMonthlyReport(ctx context.Context, req MonthlyReportRequest) (*bytes.Buffer, string, error)

	// GenerateForCompany is the claims-free variant used by scheduled jobs.
	GenerateForCompany(ctx context.Context, companyID string, year, month int) (MonthlyReport, error)
}

type MonthlyReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeMonthlyRow is one employee's aggregated month. OvertimePaidHours
// applies the configured diurnal/nocturnal rates to the overtime buckets.
type EmployeeMonthlyRow struct {
	EmployeeID             string  `json:"employee_id"`
	FullName               string  `json:"full_name"`
	WorkedHours            float64 `json:"worked_hours"`
	NightHours             float64 `json:"night_hours"`
	OvertimeDiurnalHours   float64 `json:"overtime_diurnal_hours"`
	OvertimeNocturnalHours float64 `json:"overtime_nocturnal_hours"`
	OvertimePaidHours      float64 `json:"overtime_paid_hours"`
	Absences               int     `json:"absences"`
	PaidLeaveDays          int     `json:"paid_leave_days"`
	UnpaidLeaveDays        int     `json:"unpaid_leave_days"`
	DaysWorked             int     `json:"days_worked"`
	DayErrorCount          int     `json:"day_error_count"`

	// Error is set when this employee's month could not be computed at all;
	// the rest of the report still generates.
	Error *string `json:"error,omitempty"`
}

type MonthlyReport struct {
	CompanyID   string               `json:"company_id"`
	PeriodYear  int                  `json:"period_year"`
	PeriodMonth int                  `json:"period_month"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	GeneratedAt string               `json:"generated_at"`
	Employees   []EmployeeMonthlyRow `json:"employees"`
}
