package response

import (
	"errors"
	"net/http"

	"github.com/villacare/timekeeper-backend-go/internal/domain/employee"
	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/domain/timesheet"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Pattern domain errors
	case errors.Is(err, pattern.ErrPatternNotFound):
		NotFound(w, "Shift pattern not found")
	case errors.Is(err, pattern.ErrInvalidPattern):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, schedule.ErrUndefinedSchedule):
		UnprocessableEntity(w, "No schedule is defined for the requested date")
	case errors.Is(err, schedule.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrMalformedPunch):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, punch.ErrPunchNotDeletable):
		Conflict(w, "Punches with recorded times cannot be deleted")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Engine configuration errors
	case errors.Is(err, timesheet.ErrConfigurationInvalid):
		InternalServerError(w, "Workday configuration is invalid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
