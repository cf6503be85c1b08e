package punch

import (
	"context"

	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

// PunchService covers the punch lifecycle: create, correct, rarely delete.
// Deleting a punch that carries recorded times is refused; corrections of
// persisted history are an external, audited concern.
type PunchService interface {
	UpsertPunch(ctx context.Context, req UpsertPunchRequest) (PunchResponse, error)
	GetPunch(ctx context.Context, id string) (PunchResponse, error)
	ListPunches(ctx context.Context, employeeID string, startDate, endDate string) ([]PunchResponse, error)
	DeletePunch(ctx context.Context, id string) error
}

type UpsertPunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Entry      *string `json:"entry,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpsertPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	clockFields := []struct {
		name  string
		value *string
	}{
		{"entry", r.Entry},
		{"break_start", r.BreakStart},
		{"break_end", r.BreakEnd},
		{"exit", r.Exit},
	}
	for _, f := range clockFields {
		if f.value == nil {
			continue
		}
		if _, ok := validator.IsValidClock(*f.value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " must be a valid HH:MM clock time",
			})
		}
	}

	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be provided together",
		})
	}

	// Breaks have no overnight semantics: end before start is malformed.
	if r.BreakStart != nil && r.BreakEnd != nil {
		bs, okStart := validator.IsValidClock(*r.BreakStart)
		be, okEnd := validator.IsValidClock(*r.BreakEnd)
		if okStart && okEnd && be.Before(bs) {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must not be before break_start",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Entry      *string `json:"entry,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Overnight  bool    `json:"overnight"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
