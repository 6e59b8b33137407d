package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	pay, payOK := validator.IsValidDate(r.PayDate)
	if !payOK {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be after start_date"})
	}
	if endOK && payOK && pay.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must not be before end_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PayDate     string  `json:"pay_date"`
	IsProcessed bool    `json:"is_processed"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// ========== SALARY ITEM DTOs ==========

type CreateSalaryItemRequest struct {
	Name            string           `json:"name"`
	ItemType        string           `json:"item_type"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Percentage      *decimal.Decimal `json:"percentage,omitempty"`
	IsFixed         bool             `json:"is_fixed"`
	ApplyToParttime bool             `json:"apply_to_parttime"`
	Description     *string          `json:"description,omitempty"`
}

func (r *CreateSalaryItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !ItemType(r.ItemType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "item_type", Message: "must be 'allowance', 'bonus' or 'deduction'"})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Percentage != nil && r.Percentage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryItemResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ItemType        string           `json:"item_type"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Percentage      *decimal.Decimal `json:"percentage,omitempty"`
	IsFixed         bool             `json:"is_fixed"`
	ApplyToParttime bool             `json:"apply_to_parttime"`
	Description     *string          `json:"description,omitempty"`
}

// ========== SALARY DTOs ==========

type CalculateSalaryRequest struct {
	EmployeeID string `json:"employee_id"`
	PeriodID   string `json:"period_id"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryDetailResponse struct {
	SalaryItemID string          `json:"salary_item_id"`
	ItemName     string          `json:"item_name"`
	ItemType     string          `json:"item_type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
}

type SalaryResponse struct {
	ID             string                 `json:"id"`
	EmployeeID     string                 `json:"employee_id"`
	EmployeeName   string                 `json:"employee_name,omitempty"`
	PeriodID       string                 `json:"period_id"`
	PeriodLabel    string                 `json:"period_label,omitempty"`
	BaseAmount     decimal.Decimal        `json:"base_amount"`
	WorkingHours   decimal.Decimal        `json:"working_hours"`
	OvertimeHours  decimal.Decimal        `json:"overtime_hours"`
	OvertimeAmount decimal.Decimal        `json:"overtime_amount"`
	TotalSalary    decimal.Decimal        `json:"total_salary"`
	Status         string                 `json:"status"`
	Details        []SalaryDetailResponse `json:"details,omitempty"`
}

type SalaryFilter struct {
	EmployeeID *string
	PeriodID   *string
	Status     *string
}

type SalarySummaryResponse struct {
	EmployeeID    string          `json:"employee_id"`
	TotalSalaries int             `json:"total_salaries"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	LatestSalary  *SalaryResponse `json:"latest_salary,omitempty"`
}

type ProcessPayrollResponse struct {
	PeriodID       string `json:"period_id"`
	ProcessedCount int    `json:"processed_count"`
}
