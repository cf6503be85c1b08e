package report

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/employee"
	"github.com/villacare/timekeeper-backend-go/internal/domain/report"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
)

type reportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	timesheetSvc timesheet.TimesheetService
	cfg          timesheet.WorkdayConfig
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	timesheetSvc timesheet.TimesheetService,
	cfg timesheet.WorkdayConfig,
) report.ReportService {
	return &reportServiceImpl{
		employeeRepo: employeeRepo,
		timesheetSvc: timesheetSvc,
		cfg:          cfg,
	}
}

// GenerateMonthlyReport implements report.ReportService.
func (s *reportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	return s.GenerateForCompany(ctx, companyID, req.Year, req.Month)
}

// ExportMonthlyReport implements report.ReportService.
func (s *reportServiceImpl) ExportMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (*bytes.Buffer, string, error) {
	rep, err := s.GenerateMonthlyReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	buf, err := BuildWorkbook(rep)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}

	filename := fmt.Sprintf("timesheet_%04d-%02d.xlsx", rep.PeriodYear, rep.PeriodMonth)
	return buf, filename, nil
}

// GenerateForCompany implements report.ReportService. Each employee's month
// is computed in its own goroutine; one employee's failure lands in their row
// instead of failing the report.
func (s *reportServiceImpl) GenerateForCompany(ctx context.Context, companyID string, year, month int) (report.MonthlyReport, error) {
	employees, err := s.employeeRepo.ListActive(ctx, companyID)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	rows := make([]report.EmployeeMonthlyRow, len(employees))
	var wg sync.WaitGroup
	for i, emp := range employees {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(i int, emp employee.Employee) {
			defer wg.Done()
			rows[i] = s.employeeRow(ctx, emp, companyID, start, end)
		}(i, emp)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return report.MonthlyReport{}, err
	}

	return report.MonthlyReport{
		CompanyID:   companyID,
		PeriodYear:  year,
		PeriodMonth: month,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Employees:   rows,
	}, nil
}

func (s *reportServiceImpl) employeeRow(ctx context.Context, emp employee.Employee, companyID string, start, end time.Time) report.EmployeeMonthlyRow {
	row := report.EmployeeMonthlyRow{
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
	}

	totals, dayErrs, err := s.timesheetSvc.ComputeTotals(ctx, emp.ID, companyID, start, end)
	if err != nil {
		msg := err.Error()
		row.Error = &msg
		return row
	}

	row.WorkedHours = minutesToHours(totals.WorkedMinutes)
	row.NightHours = minutesToHours(totals.NightMinutes)
	row.OvertimeDiurnalHours = minutesToHours(totals.OvertimeDiurnalMinutes)
	row.OvertimeNocturnalHours = minutesToHours(totals.OvertimeNocturnalMinutes)
	row.OvertimePaidHours = row.OvertimeDiurnalHours*s.cfg.DiurnalOvertimeRate +
		row.OvertimeNocturnalHours*s.cfg.NocturnalOvertimeRate
	row.Absences = totals.Absences
	row.PaidLeaveDays = totals.PaidLeaveDays
	row.UnpaidLeaveDays = totals.UnpaidLeaveDays
	row.DaysWorked = totals.DaysWorked
	row.DayErrorCount = len(dayErrs)
	return row
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
