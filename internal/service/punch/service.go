package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/validator"
)

type punchServiceImpl struct {
	punchRepo punch.PunchRepository
}

func NewPunchService(punchRepo punch.PunchRepository) punch.PunchService {
	return &punchServiceImpl{punchRepo: punchRepo}
}

// UpsertPunch implements punch.PunchService. The (employee, date) pair is the
// natural key: punching twice for the same day replaces the record, which is
// how corrections arrive.
func (s *punchServiceImpl) UpsertPunch(ctx context.Context, req punch.UpsertPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	p := punch.Punch{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Notes:      req.Notes,
	}
	if p.Entry, err = parseOptionalClock(req.Entry); err != nil {
		return punch.PunchResponse{}, err
	}
	if p.BreakStart, err = parseOptionalClock(req.BreakStart); err != nil {
		return punch.PunchResponse{}, err
	}
	if p.BreakEnd, err = parseOptionalClock(req.BreakEnd); err != nil {
		return punch.PunchResponse{}, err
	}
	if p.Exit, err = parseOptionalClock(req.Exit); err != nil {
		return punch.PunchResponse{}, err
	}

	saved, err := s.punchRepo.Upsert(ctx, p)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to upsert punch: %w", err)
	}

	return mapPunchToResponse(saved), nil
}

// GetPunch implements punch.PunchService.
func (s *punchServiceImpl) GetPunch(ctx context.Context, id string) (punch.PunchResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	p, err := s.punchRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return mapPunchToResponse(p), nil
}

// ListPunches implements punch.PunchService.
func (s *punchServiceImpl) ListPunches(ctx context.Context, employeeID string, startDate, endDate string) ([]punch.PunchResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, err := validator.ParseDate(startDate)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: "start_date", Message: "start_date must be a valid YYYY-MM-DD date"}}
	}
	end, err := validator.ParseDate(endDate)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: "end_date", Message: "end_date must be a valid YYYY-MM-DD date"}}
	}
	if end.Before(start) {
		return nil, validator.ValidationErrors{{Field: "end_date", Message: "end_date must not be before start_date"}}
	}

	punches, err := s.punchRepo.ListByRange(ctx, employeeID, start, end, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}
	return responses, nil
}

// DeletePunch implements punch.PunchService. Only blank rows may be removed;
// recorded times are corrected with a new upsert, never erased.
func (s *punchServiceImpl) DeletePunch(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	p, err := s.punchRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to get punch: %w", err)
	}
	if !p.IsEmpty() {
		return punch.ErrPunchNotDeletable
	}

	if err := s.punchRepo.Delete(ctx, id, companyID); err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

func parseOptionalClock(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := validator.ParseClock(*v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clock time %q: %w", *v, err)
	}
	return &t, nil
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

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	resp := punch.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.Date.Format("2006-01-02"),
		Notes:      p.Notes,
		Overnight:  p.IsOvernight(),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Entry != nil {
		v := p.Entry.Format("15:04")
		resp.Entry = &v
	}
	if p.BreakStart != nil {
		v := p.BreakStart.Format("15:04")
		resp.BreakStart = &v
	}
	if p.BreakEnd != nil {
		v := p.BreakEnd.Format("15:04")
		resp.BreakEnd = &v
	}
	if p.Exit != nil {
		v := p.Exit.Format("15:04")
		resp.Exit = &v
	}
	return resp
}
