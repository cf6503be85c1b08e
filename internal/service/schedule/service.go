package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/database"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
	"github.com/villacare/timekeeper-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type assignmentServiceImpl struct {
	db             *database.DB
	assignmentRepo schedule.AssignmentRepository
	catalog        pattern.Catalog
	resolver       schedule.Resolver
}

func NewAssignmentService(
	db *database.DB,
	assignmentRepo schedule.AssignmentRepository,
	catalog pattern.Catalog,
	resolver schedule.Resolver,
) schedule.AssignmentService {
	return &assignmentServiceImpl{
		db:             db,
		assignmentRepo: assignmentRepo,
		catalog:        catalog,
		resolver:       resolver,
	}
}

// Assign implements schedule.AssignmentService. A new assignment supersedes
// the previously active one from its effective date onwards; the old row is
// stamped, never mutated in its schedule-bearing fields, so dates already
// resolved against it stay stable.
func (s *assignmentServiceImpl) Assign(ctx context.Context, req schedule.AssignRequest) (schedule.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	if _, err := s.catalog.Lookup(req.PatternID); err != nil {
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to look up pattern %q: %w", req.PatternID, err)
	}

	entry, _ := validator.ParseClock(req.EntryTime)
	exit, _ := validator.ParseClock(req.ExitTime)
	effectiveFrom, _ := validator.ParseDate(req.EffectiveFrom)

	var breakStart, breakEnd *time.Time
	if req.BreakStart != nil {
		t, _ := validator.ParseClock(*req.BreakStart)
		breakStart = &t
	}
	if req.BreakEnd != nil {
		t, _ := validator.ParseClock(*req.BreakEnd)
		breakEnd = &t
	}

	assignment := schedule.Assignment{
		EmployeeID:    req.EmployeeID,
		CompanyID:     companyID,
		PatternID:     req.PatternID,
		EntryTime:     entry,
		BreakStart:    breakStart,
		BreakEnd:      breakEnd,
		ExitTime:      exit,
		EffectiveFrom: effectiveFrom,
	}

	var created schedule.Assignment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		active, err := s.assignmentRepo.GetActive(txCtx, req.EmployeeID, effectiveFrom, companyID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, schedule.ErrAssignmentNotFound) {
			return fmt.Errorf("failed to get active assignment: %w", err)
		}
		if err == nil {
			if err := s.assignmentRepo.Supersede(txCtx, active.ID, effectiveFrom, companyID); err != nil {
				return fmt.Errorf("failed to supersede assignment: %w", err)
			}
		}

		created, err = s.assignmentRepo.Create(txCtx, assignment)
		if err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(created), nil
}

// GetActiveAssignment implements schedule.AssignmentService.
func (s *assignmentServiceImpl) GetActiveAssignment(ctx context.Context, employeeID string, asOf time.Time) (schedule.AssignmentResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	assignment, err := s.assignmentRepo.GetActive(ctx, employeeID, asOf, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.AssignmentResponse{}, schedule.ErrAssignmentNotFound
		}
		return schedule.AssignmentResponse{}, fmt.Errorf("failed to get active assignment: %w", err)
	}

	return mapAssignmentToResponse(assignment), nil
}

// ListAssignments implements schedule.AssignmentService.
func (s *assignmentServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]schedule.AssignmentResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}
	return responses, nil
}

// GetExpectedRange implements schedule.AssignmentService.
func (s *assignmentServiceImpl) GetExpectedRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.ExpectedDayResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetActive(ctx, employeeID, start, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}

	days, err := s.resolver.ResolveRange(assignment, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ExpectedDayResponse, 0, len(days))
	for _, d := range days {
		responses = append(responses, MapExpectedDayToResponse(d))
	}
	return responses, nil
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

func mapAssignmentToResponse(a schedule.Assignment) schedule.AssignmentResponse {
	resp := schedule.AssignmentResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		PatternID:     a.PatternID,
		EntryTime:     a.EntryTime.Format("15:04"),
		ExitTime:      a.ExitTime.Format("15:04"),
		EffectiveFrom: a.EffectiveFrom.Format("2006-01-02"),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
	if a.BreakStart != nil {
		bs := a.BreakStart.Format("15:04")
		resp.BreakStart = &bs
	}
	if a.BreakEnd != nil {
		be := a.BreakEnd.Format("15:04")
		resp.BreakEnd = &be
	}
	if a.SupersededAt != nil {
		sa := a.SupersededAt.Format("2006-01-02")
		resp.SupersededAt = &sa
	}
	return resp
}

// MapExpectedDayToResponse converts a resolved day to its transport shape.
func MapExpectedDayToResponse(d schedule.ExpectedDay) schedule.ExpectedDayResponse {
	resp := schedule.ExpectedDayResponse{
		Date:          d.Date.Format("2006-01-02"),
		MustWork:      d.MustWork,
		ExpectedHours: d.ExpectedHours,
	}
	if d.ExpectedEntry != nil {
		v := d.ExpectedEntry.Format("15:04")
		resp.Entry = &v
	}
	if d.ExpectedBreakStart != nil {
		v := d.ExpectedBreakStart.Format("15:04")
		resp.BreakStart = &v
	}
	if d.ExpectedBreakEnd != nil {
		v := d.ExpectedBreakEnd.Format("15:04")
		resp.BreakEnd = &v
	}
	if d.ExpectedExit != nil {
		v := d.ExpectedExit.Format("15:04")
		resp.Exit = &v
	}
	return resp
}
