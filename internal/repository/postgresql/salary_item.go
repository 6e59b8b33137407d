package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/database"
)

type salaryItemRepository struct {
	db *database.DB
}

func NewSalaryItemRepository(db *database.DB) payroll.SalaryItemRepository {
	return &salaryItemRepository{db: db}
}

const salaryItemColumns = `
	id, name, item_type, amount, percentage, is_fixed, apply_to_parttime,
	description, created_at, updated_at
`

func scanSalaryItem(row pgx.Row) (payroll.SalaryItem, error) {
	var item payroll.SalaryItem
	err := row.Scan(
		&item.ID, &item.Name, &item.ItemType, &item.Amount, &item.Percentage,
		&item.IsFixed, &item.ApplyToParttime, &item.Description,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *salaryItemRepository) Create(ctx context.Context, item payroll.SalaryItem) (payroll.SalaryItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_items (id, name, item_type, amount, percentage, is_fixed,
			apply_to_parttime, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + salaryItemColumns + `
	`

	created, err := scanSalaryItem(q.QueryRow(ctx, query,
		uuid.NewString(), item.Name, item.ItemType, item.Amount, item.Percentage,
		item.IsFixed, item.ApplyToParttime, item.Description,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_item_name") {
			return payroll.SalaryItem{}, payroll.ErrSalaryItemNameExists
		}
		return payroll.SalaryItem{}, fmt.Errorf("failed to create salary item: %w", err)
	}

	return created, nil
}

func (r *salaryItemRepository) GetByID(ctx context.Context, id string) (payroll.SalaryItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryItemColumns + ` FROM salary_items WHERE id = $1`

	item, err := scanSalaryItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryItem{}, payroll.ErrSalaryItemNotFound
		}
		return payroll.SalaryItem{}, fmt.Errorf("failed to get salary item: %w", err)
	}

	return item, nil
}

func (r *salaryItemRepository) GetByName(ctx context.Context, name string) (payroll.SalaryItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryItemColumns + ` FROM salary_items WHERE name = $1`

	item, err := scanSalaryItem(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryItem{}, payroll.ErrSalaryItemNotFound
		}
		return payroll.SalaryItem{}, fmt.Errorf("failed to get salary item: %w", err)
	}

	return item, nil
}

func (r *salaryItemRepository) List(ctx context.Context) ([]payroll.SalaryItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryItemColumns + ` FROM salary_items ORDER BY item_type, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary items: %w", err)
	}
	defer rows.Close()

	var items []payroll.SalaryItem
	for rows.Next() {
		item, err := scanSalaryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// GetOrCreateByName races are resolved by the unique index on name: a losing
// insert falls back to reading the winner's row.
func (r *salaryItemRepository) GetOrCreateByName(ctx context.Context, item payroll.SalaryItem) (payroll.SalaryItem, bool, error) {
	existing, err := r.GetByName(ctx, item.Name)
	if err == nil {
		return existing, false, nil
	}
	if err != payroll.ErrSalaryItemNotFound {
		return payroll.SalaryItem{}, false, err
	}

	created, err := r.Create(ctx, item)
	if err != nil {
		if err == payroll.ErrSalaryItemNameExists {
			existing, getErr := r.GetByName(ctx, item.Name)
			if getErr != nil {
				return payroll.SalaryItem{}, false, getErr
			}
			return existing, false, nil
		}
		return payroll.SalaryItem{}, false, err
	}

	return created, true, nil
}
