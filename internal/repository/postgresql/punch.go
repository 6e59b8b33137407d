package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}

func (r *punchRepository) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, punch_time, punch_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, punch_time, punch_type, created_at
	`

	var p attendance.Punch
	err := q.QueryRow(ctx, query,
		uuid.NewString(), punch.EmployeeID, punch.PunchTime, punch.PunchType,
	).Scan(&p.ID, &p.EmployeeID, &p.PunchTime, &p.PunchType, &p.CreatedAt)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

func (r *punchRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return r.GetByEmployeeAndRange(ctx, employeeID, dayStart, dayStart.AddDate(0, 0, 1))
}

// GetByEmployeeAndRange returns punches with start <= punch_time < end,
// ordered by punch time ascending.
func (r *punchRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, punch_time, punch_type, created_at
		FROM punches
		WHERE employee_id = $1 AND punch_time >= $2 AND punch_time < $3
		ORDER BY punch_time
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.PunchTime, &p.PunchType, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, nil
}
