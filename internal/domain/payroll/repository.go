package payroll

import (
	"context"
	"time"
)

type PeriodRepository interface {
	Create(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id string) (PayrollPeriod, error)
	List(ctx context.Context) ([]PayrollPeriod, error)
	MarkProcessed(ctx context.Context, id string, processedAt time.Time) error
}

type SalaryItemRepository interface {
	Create(ctx context.Context, item SalaryItem) (SalaryItem, error)
	GetByID(ctx context.Context, id string) (SalaryItem, error)
	GetByName(ctx context.Context, name string) (SalaryItem, error)
	List(ctx context.Context) ([]SalaryItem, error)
	// GetOrCreateByName returns the existing item with that name, creating it
	// from the given template on first use.
	GetOrCreateByName(ctx context.Context, item SalaryItem) (SalaryItem, bool, error)
}

type SalaryRepository interface {
	// GetOrCreate returns the salary row for (employeeID, periodID), creating
	// a zeroed draft on first use. The bool reports whether a row was created.
	GetOrCreate(ctx context.Context, employeeID, periodID string) (Salary, bool, error)
	GetByID(ctx context.Context, id string) (Salary, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (Salary, error)
	List(ctx context.Context, filter SalaryFilter) ([]Salary, error)
	// ListByEmployee returns the employee's salaries joined with their periods,
	// optionally filtered by year/month of the period start, newest period first.
	ListByEmployee(ctx context.Context, employeeID string, year, month *int) ([]Salary, error)
	UpdateAmounts(ctx context.Context, s Salary) error
	SetStatus(ctx context.Context, id string, status SalaryStatus) error

	// Details
	ReplaceDetails(ctx context.Context, salaryID string, details []SalaryDetail) error
	GetDetails(ctx context.Context, salaryID string) ([]SalaryDetail, error)
}
