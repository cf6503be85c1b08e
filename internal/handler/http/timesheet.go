package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
	"github.com/villacare/timekeeper-backend-go/internal/handler/http/response"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	GetTimesheet(w http.ResponseWriter, r *http.Request)
	GetPeriodTotals(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// GetTimesheet handles GET /timesheets
func (h *timesheetHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id parameter is required", nil)
		return
	}

	start, err := validator.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		response.BadRequest(w, "invalid start_date parameter", nil)
		return
	}
	end, err := validator.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		response.BadRequest(w, "invalid end_date parameter", nil)
		return
	}

	result, err := h.timesheetService.GetTimesheet(ctx, employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPeriodTotals handles GET /timesheets/totals
func (h *timesheetHandlerImpl) GetPeriodTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id parameter is required", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	result, err := h.timesheetService.GetPeriodTotals(ctx, employeeID, year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
