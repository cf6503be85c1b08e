package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/handler/http/response"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	GetActiveAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	GetExpectedRange(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	assignmentService schedule.AssignmentService
}

func NewScheduleHandler(assignmentService schedule.AssignmentService) ScheduleHandler {
	return &scheduleHandlerImpl{assignmentService: assignmentService}
}

// Assign handles POST /schedules/assignments
func (h *scheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req schedule.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.assignmentService.Assign(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule assigned", result)
}

// GetActiveAssignment handles GET /schedules/assignments/active
func (h *scheduleHandlerImpl) GetActiveAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id parameter is required", nil)
		return
	}

	asOf := time.Now().UTC()
	if asOfStr := r.URL.Query().Get("as_of"); asOfStr != "" {
		parsed, err := validator.ParseDate(asOfStr)
		if err != nil {
			response.BadRequest(w, "invalid as_of parameter", nil)
			return
		}
		asOf = parsed
	}

	result, err := h.assignmentService.GetActiveAssignment(ctx, employeeID, asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAssignments handles GET /schedules/assignments
func (h *scheduleHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id parameter is required", nil)
		return
	}

	result, err := h.assignmentService.ListAssignments(ctx, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetExpectedRange handles GET /schedules/expected
func (h *scheduleHandlerImpl) GetExpectedRange(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.assignmentService.GetExpectedRange(ctx, employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
