package payroll

import "context"

// TxRunner runs fn inside one storage transaction; repositories called with
// the derived context join it.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayrollService interface {
	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)

	// Salary items
	CreateSalaryItem(ctx context.Context, req CreateSalaryItemRequest) (SalaryItemResponse, error)
	ListSalaryItems(ctx context.Context) ([]SalaryItemResponse, error)
	CreateDefaultSalaryItems(ctx context.Context) ([]SalaryItemResponse, error)

	// Salaries
	CalculateSalaryForPeriod(ctx context.Context, employeeID, periodID string) (SalaryResponse, error)
	PreviewSalary(ctx context.Context, employeeID, periodID string) (SalaryResponse, error)
	ProcessPayrollForPeriod(ctx context.Context, periodID string) (ProcessPayrollResponse, error)
	ConfirmSalary(ctx context.Context, salaryID string) (SalaryResponse, error)
	GetSalary(ctx context.Context, salaryID string) (SalaryResponse, error)
	ListSalaries(ctx context.Context, filter SalaryFilter) ([]SalaryResponse, error)
	GetSalarySummary(ctx context.Context, employeeID string, year, month *int) (SalarySummaryResponse, error)
}
