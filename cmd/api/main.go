package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/villacare/timekeeper-backend-go/internal/config"
	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
	"github.com/villacare/timekeeper-backend-go/internal/fixtures"
	appHTTP "github.com/villacare/timekeeper-backend-go/internal/handler/http"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/cron"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/database"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/jwt"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
	"github.com/villacare/timekeeper-backend-go/internal/repository/postgresql"
	punchService "github.com/villacare/timekeeper-backend-go/internal/service/punch"
	reportService "github.com/villacare/timekeeper-backend-go/internal/service/report"
	scheduleService "github.com/villacare/timekeeper-backend-go/internal/service/schedule"
	timesheetService "github.com/villacare/timekeeper-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	catalog, err := pattern.NewCatalog(fixtures.DefaultShiftPatterns())
	if err != nil {
		log.Fatal("Failed to load shift pattern catalog:", err)
	}

	workdayCfg, err := buildWorkdayConfig(cfg.Workday)
	if err != nil {
		log.Fatal("Failed to build workday configuration:", err)
	}

	punchRepo := postgresql.NewPunchRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := scheduleService.NewResolver(catalog)
	reconciler := timesheetService.NewReconciler(resolver)
	calculator, err := timesheetService.NewHoursCalculator(workdayCfg)
	if err != nil {
		log.Fatal("Failed to build hours calculator:", err)
	}

	assignmentSvc := scheduleService.NewAssignmentService(db, assignmentRepo, catalog, resolver)
	punchSvc := punchService.NewPunchService(punchRepo)
	timesheetSvc := timesheetService.NewTimesheetService(punchRepo, assignmentRepo, leaveRepo, reconciler, calculator)
	reportSvc := reportService.NewReportService(employeeRepo, timesheetSvc, workdayCfg)

	scheduler := cron.NewScheduler()
	reportJobs := cron.NewReportJobs(reportSvc, db, cfg.Export.Dir)
	reportJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	patternHandler := appHTTP.NewPatternHandler(catalog)
	scheduleHandler := appHTTP.NewScheduleHandler(assignmentSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		patternHandler,
		scheduleHandler,
		punchHandler,
		timesheetHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func buildWorkdayConfig(cfg config.WorkdayConfig) (timesheet.WorkdayConfig, error) {
	nightStart, err := validator.ParseClock(cfg.NightWindowStart)
	if err != nil {
		return timesheet.WorkdayConfig{}, fmt.Errorf("invalid NIGHT_WINDOW_START: %w", err)
	}
	nightEnd, err := validator.ParseClock(cfg.NightWindowEnd)
	if err != nil {
		return timesheet.WorkdayConfig{}, fmt.Errorf("invalid NIGHT_WINDOW_END: %w", err)
	}

	out := timesheet.WorkdayConfig{
		NightStart:            nightStart,
		NightEnd:              nightEnd,
		MinBreakMinutes:       cfg.MinBreakMinutes,
		DiurnalOvertimeRate:   cfg.DiurnalOvertimeRate,
		NocturnalOvertimeRate: cfg.NocturnalOvertimeRate,
	}
	if err := out.Validate(); err != nil {
		return timesheet.WorkdayConfig{}, err
	}
	return out, nil
}
