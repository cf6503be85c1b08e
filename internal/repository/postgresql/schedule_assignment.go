package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO schedule_assignments (
			id, employee_id, company_id, pattern_id, entry_time, break_start_time,
			break_end_time, exit_time, effective_from
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.CompanyID, a.PatternID, a.EntryTime,
		a.BreakStart, a.BreakEnd, a.ExitTime, a.EffectiveFrom,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return schedule.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetActive implements schedule.AssignmentRepository: the latest assignment
// effective on or before asOf that has not been superseded by that date.
func (r *assignmentRepositoryImpl) GetActive(ctx context.Context, employeeID string, asOf time.Time, companyID string) (schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, pattern_id, entry_time, break_start_time,
			   break_end_time, exit_time, effective_from, superseded_at, created_at, updated_at
		FROM schedule_assignments
		WHERE employee_id = $1 AND company_id = $2
		  AND effective_from <= $3
		  AND (superseded_at IS NULL OR superseded_at > $3)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var a schedule.Assignment
	err := q.QueryRow(ctx, query, employeeID, companyID, asOf).Scan(
		&a.ID, &a.EmployeeID, &a.CompanyID, &a.PatternID, &a.EntryTime,
		&a.BreakStart, &a.BreakEnd, &a.ExitTime, &a.EffectiveFrom,
		&a.SupersededAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Assignment{}, schedule.ErrAssignmentNotFound
		}
		return schedule.Assignment{}, fmt.Errorf("failed to get active assignment: %w", err)
	}

	return a, nil
}

// Supersede implements schedule.AssignmentRepository. The row keeps its
// schedule-bearing fields; only the supersede stamp changes, so days already
// resolved against it stay stable.
func (r *assignmentRepositoryImpl) Supersede(ctx context.Context, id string, at time.Time, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_assignments
		SET superseded_at = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND superseded_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, at, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to supersede assignment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}

	return nil
}

// ListByEmployee implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, pattern_id, entry_time, break_start_time,
			   break_end_time, exit_time, effective_from, superseded_at, created_at, updated_at
		FROM schedule_assignments
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		var a schedule.Assignment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.CompanyID, &a.PatternID, &a.EntryTime,
			&a.BreakStart, &a.BreakEnd, &a.ExitTime, &a.EffectiveFrom,
			&a.SupersededAt, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
