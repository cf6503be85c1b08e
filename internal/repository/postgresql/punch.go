package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Upsert implements punch.PunchRepository. The unique index on
// (employee_id, date) makes the second punch for a day a replacement.
func (r *punchRepositoryImpl) Upsert(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, employee_id, company_id, date, entry_time, break_start_time,
			break_end_time, exit_time, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			entry_time = EXCLUDED.entry_time,
			break_start_time = EXCLUDED.break_start_time,
			break_end_time = EXCLUDED.break_end_time,
			exit_time = EXCLUDED.exit_time,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.CompanyID, p.Date,
		p.Entry, p.BreakStart, p.BreakEnd, p.Exit, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to upsert punch: %w", err)
	}

	return p, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, entry_time, break_start_time,
			   break_end_time, exit_time, notes, created_at, updated_at
		FROM punches
		WHERE id = $1 AND company_id = $2
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.Entry, &p.BreakStart,
		&p.BreakEnd, &p.Exit, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return p, nil
}

// GetByEmployeeAndDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, entry_time, break_start_time,
			   break_end_time, exit_time, notes, created_at, updated_at
		FROM punches
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, employeeID, date, companyID).Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.Entry, &p.BreakStart,
		&p.BreakEnd, &p.Exit, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get punch: %w", err)
	}

	return &p, nil
}

// ListByRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, entry_time, break_start_time,
			   break_end_time, exit_time, notes, created_at, updated_at
		FROM punches
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.Entry, &p.BreakStart,
			&p.BreakEnd, &p.Exit, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM punches WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}
