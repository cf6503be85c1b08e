package cron

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/report"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/database"
	svcreport "github.com/villacare/timekeeper-backend-go/internal/service/report"
)

// ReportJobs exports the previous month's timesheet workbook for every
// company shortly after month end.
type ReportJobs struct {
	reportSvc report.ReportService
	db        *database.DB
	exportDir string
}

func NewReportJobs(reportSvc report.ReportService, db *database.DB, exportDir string) *ReportJobs {
	return &ReportJobs{
		reportSvc: reportSvc,
		db:        db,
		exportDir: exportDir,
	}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("export_monthly_timesheets", 1*time.Hour, j.ExportMonthlyTimesheets)
}

// ExportMonthlyTimesheets runs hourly but only acts in the first hour of the
// first day of a month, exporting the month that just closed.
func (j *ReportJobs) ExportMonthlyTimesheets(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	year, month := prev.Year(), int(prev.Month())

	slog.Info("Cron: Starting monthly timesheet export", "year", year, "month", month)

	rows, err := j.db.Pool.Query(ctx, `
		SELECT DISTINCT company_id FROM employees WHERE active
	`)
	if err != nil {
		return fmt.Errorf("failed to get companies: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			continue
		}
		companyIDs = append(companyIDs, companyID)
	}

	if err := os.MkdirAll(j.exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	exported := 0
	for _, companyID := range companyIDs {
		rep, err := j.reportSvc.GenerateForCompany(ctx, companyID, year, month)
		if err != nil {
			slog.Error("Cron: Failed to generate monthly report",
				"company_id", companyID, "error", err)
			continue
		}

		buf, err := svcreport.BuildWorkbook(rep)
		if err != nil {
			slog.Error("Cron: Failed to build workbook",
				"company_id", companyID, "error", err)
			continue
		}

		filename := fmt.Sprintf("timesheet_%s_%04d-%02d.xlsx", companyID, year, month)
		path := filepath.Join(j.exportDir, filename)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			slog.Error("Cron: Failed to write workbook", "path", path, "error", err)
			continue
		}
		exported++
	}

	slog.Info("Cron: Monthly timesheet export finished", "exported", exported)
	return nil
}
