package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

const workScheduleColumns = `
	id, name, schedule_type, start_time, end_time, break_start, break_end,
	is_night_shift, description, created_at, updated_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID, &ws.Name, &ws.ScheduleType, &ws.StartTime, &ws.EndTime,
		&ws.BreakStart, &ws.BreakEnd, &ws.IsNightShift, &ws.Description,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

func (r *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (id, name, schedule_type, start_time, end_time,
			break_start, break_end, is_night_shift, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + workScheduleColumns + `
	`

	created, err := scanWorkSchedule(q.QueryRow(ctx, query,
		uuid.NewString(), ws.Name, ws.ScheduleType, ws.StartTime, ws.EndTime,
		ws.BreakStart, ws.BreakEnd, ws.IsNightShift, ws.Description,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_work_schedule_name") {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNameExists
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return created, nil
}

func (r *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

func (r *workScheduleRepository) GetByName(ctx context.Context, name string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE name = $1`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

func (r *workScheduleRepository) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}

	return schedules, nil
}

type employeeScheduleRepository struct {
	db *database.DB
}

func NewEmployeeScheduleRepository(db *database.DB) schedule.EmployeeScheduleRepository {
	return &employeeScheduleRepository{db: db}
}

func (r *employeeScheduleRepository) Assign(ctx context.Context, es schedule.EmployeeSchedule) (schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_schedules (id, employee_id, work_schedule_id, start_date, end_date, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, work_schedule_id, start_date, end_date, is_primary, created_at
	`

	var created schedule.EmployeeSchedule
	err := q.QueryRow(ctx, query,
		uuid.NewString(), es.EmployeeID, es.WorkScheduleID, es.StartDate, es.EndDate, es.IsPrimary,
	).Scan(
		&created.ID, &created.EmployeeID, &created.WorkScheduleID,
		&created.StartDate, &created.EndDate, &created.IsPrimary, &created.CreatedAt,
	)
	if err != nil {
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to assign schedule: %w", err)
	}

	return created, nil
}

func (r *employeeScheduleRepository) GetByEmployee(ctx context.Context, employeeID string) ([]schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT es.id, es.employee_id, es.work_schedule_id, es.start_date, es.end_date,
			es.is_primary, es.created_at, ws.name AS schedule_name
		FROM employee_schedules es
		JOIN work_schedules ws ON ws.id = es.work_schedule_id
		WHERE es.employee_id = $1
		ORDER BY es.start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee schedules: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.EmployeeSchedule
	for rows.Next() {
		var es schedule.EmployeeSchedule
		if err := rows.Scan(
			&es.ID, &es.EmployeeID, &es.WorkScheduleID, &es.StartDate, &es.EndDate,
			&es.IsPrimary, &es.CreatedAt, &es.ScheduleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee schedule: %w", err)
		}
		assignments = append(assignments, es)
	}

	return assignments, nil
}

func (r *employeeScheduleRepository) Remove(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employee_schedules WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to remove employee schedule: %w", err)
	}

	return nil
}
