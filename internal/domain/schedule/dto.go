package schedule

import (
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

type AssignRequest struct {
	EmployeeID    string  `json:"employee_id"`
	PatternID     string  `json:"pattern_id"`
	EntryTime     string  `json:"entry_time"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	ExitTime      string  `json:"exit_time"`
	EffectiveFrom string  `json:"effective_from"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.PatternID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pattern_id",
			Message: "pattern_id is required",
		})
	}
	if _, ok := validator.IsValidClock(r.EntryTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be a valid HH:MM clock time",
		})
	}
	if _, ok := validator.IsValidClock(r.ExitTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be a valid HH:MM clock time",
		})
	}
	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be provided together",
		})
	}
	if r.BreakStart != nil {
		if _, ok := validator.IsValidClock(*r.BreakStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break_start must be a valid HH:MM clock time",
			})
		}
	}
	if r.BreakEnd != nil {
		if _, ok := validator.IsValidClock(*r.BreakEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be a valid HH:MM clock time",
			})
		}
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	PatternID     string  `json:"pattern_id"`
	EntryTime     string  `json:"entry_time"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	ExitTime      string  `json:"exit_time"`
	EffectiveFrom string  `json:"effective_from"`
	SupersededAt  *string `json:"superseded_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ExpectedDayResponse struct {
	Date          string  `json:"date"`
	MustWork      bool    `json:"must_work"`
	ExpectedHours float64 `json:"expected_hours"`
	Entry         *string `json:"entry,omitempty"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	Exit          *string `json:"exit,omitempty"`
}
