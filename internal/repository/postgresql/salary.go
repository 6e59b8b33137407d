package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.period_id, s.base_amount, s.working_hours,
	s.overtime_hours, s.overtime_amount, s.status, s.created_at, s.updated_at
`

func scanSalary(row pgx.Row) (payroll.Salary, error) {
	var s payroll.Salary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PeriodID, &s.BaseAmount, &s.WorkingHours,
		&s.OvertimeHours, &s.OvertimeAmount, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetOrCreate relies on the unique (employee_id, period_id) index: the insert
// uses ON CONFLICT DO NOTHING and the follow-up read returns whichever row won.
func (r *salaryRepository) GetOrCreate(ctx context.Context, employeeID, periodID string) (payroll.Salary, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (id, employee_id, period_id, base_amount, working_hours,
			overtime_hours, overtime_amount, status)
		VALUES ($1, $2, $3, 0, 0, 0, 0, 'draft')
		ON CONFLICT (employee_id, period_id) DO NOTHING
		RETURNING id, employee_id, period_id, base_amount, working_hours,
			overtime_hours, overtime_amount, status, created_at, updated_at
	`

	s, err := scanSalary(q.QueryRow(ctx, query, uuid.NewString(), employeeID, periodID))
	if err == nil {
		return s, true, nil
	}
	if err != pgx.ErrNoRows {
		return payroll.Salary{}, false, fmt.Errorf("failed to create salary: %w", err)
	}

	existing, err := r.GetByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return payroll.Salary{}, false, err
	}
	return existing, false, nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries s WHERE s.id = $1`

	s, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Salary{}, payroll.ErrSalaryNotFound
		}
		return payroll.Salary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries s WHERE s.employee_id = $1 AND s.period_id = $2`

	s, err := scanSalary(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Salary{}, payroll.ErrSalaryNotFound
		}
		return payroll.Salary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) List(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `, e.name AS employee_name
		FROM salaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodID != nil {
		query += fmt.Sprintf(" AND s.period_id = $%d", argIdx)
		args = append(args, *filter.PeriodID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND s.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	query += " ORDER BY e.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var salaries []payroll.Salary
	for rows.Next() {
		var s payroll.Salary
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.PeriodID, &s.BaseAmount, &s.WorkingHours,
			&s.OvertimeHours, &s.OvertimeAmount, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, nil
}

func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID string, year, month *int) ([]payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `,
			p.id, p.start_date, p.end_date, p.pay_date, p.is_processed, p.processed_at,
			p.created_at, p.updated_at
		FROM salaries s
		JOIN payroll_periods p ON p.id = s.period_id
		WHERE s.employee_id = $1
	`
	args := []interface{}{employeeID}
	argIdx := 2

	if year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM p.start_date) = $%d", argIdx)
		args = append(args, *year)
		argIdx++
	}
	if month != nil {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM p.start_date) = $%d", argIdx)
		args = append(args, *month)
		argIdx++
	}
	query += " ORDER BY p.start_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries by employee: %w", err)
	}
	defer rows.Close()

	var salaries []payroll.Salary
	for rows.Next() {
		var s payroll.Salary
		var p payroll.PayrollPeriod
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.PeriodID, &s.BaseAmount, &s.WorkingHours,
			&s.OvertimeHours, &s.OvertimeAmount, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&p.ID, &p.StartDate, &p.EndDate, &p.PayDate, &p.IsProcessed, &p.ProcessedAt,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		s.Period = &p
		salaries = append(salaries, s)
	}

	return salaries, nil
}

func (r *salaryRepository) UpdateAmounts(ctx context.Context, s payroll.Salary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaries
		SET base_amount = $2, working_hours = $3, overtime_hours = $4,
			overtime_amount = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.ID, s.BaseAmount, s.WorkingHours, s.OvertimeHours, s.OvertimeAmount,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrSalaryNotFound
		}
		return fmt.Errorf("failed to update salary amounts: %w", err)
	}

	return nil
}

func (r *salaryRepository) SetStatus(ctx context.Context, id string, status payroll.SalaryStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE salaries SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrSalaryNotFound
		}
		return fmt.Errorf("failed to set salary status: %w", err)
	}

	return nil
}

// ReplaceDetails rebuilds the itemized breakdown in one shot: delete then
// insert. Callers run it inside a transaction when atomicity matters.
func (r *salaryRepository) ReplaceDetails(ctx context.Context, salaryID string, details []payroll.SalaryDetail) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM salary_details WHERE salary_id = $1`, salaryID); err != nil {
		return fmt.Errorf("failed to delete salary details: %w", err)
	}

	query := `
		INSERT INTO salary_details (id, salary_id, salary_item_id, amount, description)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, d := range details {
		if _, err := q.Exec(ctx, query, uuid.NewString(), salaryID, d.SalaryItemID, d.Amount, d.Description); err != nil {
			return fmt.Errorf("failed to insert salary detail: %w", err)
		}
	}

	return nil
}

func (r *salaryRepository) GetDetails(ctx context.Context, salaryID string) ([]payroll.SalaryDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sd.id, sd.salary_id, sd.salary_item_id, sd.amount, sd.description,
			si.name AS item_name, si.item_type
		FROM salary_details sd
		JOIN salary_items si ON si.id = sd.salary_item_id
		WHERE sd.salary_id = $1
		ORDER BY si.item_type, si.name
	`

	rows, err := q.Query(ctx, query, salaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary details: %w", err)
	}
	defer rows.Close()

	var details []payroll.SalaryDetail
	for rows.Next() {
		var d payroll.SalaryDetail
		if err := rows.Scan(
			&d.ID, &d.SalaryID, &d.SalaryItemID, &d.Amount, &d.Description,
			&d.ItemName, &d.ItemType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary detail: %w", err)
		}
		details = append(details, d)
	}

	return details, nil
}
