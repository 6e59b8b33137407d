package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	DepartmentID   string           `json:"department_id"`
	HireDate       string           `json:"hire_date"`
	EmploymentType string           `json:"employment_type"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is invalid"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if !EmploymentType(r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be 'full_time' or 'part_time'"})
	}
	switch EmploymentType(r.EmploymentType) {
	case EmploymentTypeFullTime:
		if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
		}
	case EmploymentTypePartTime:
		if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	DepartmentID   string           `json:"department_id"`
	DepartmentName string           `json:"department_name,omitempty"`
	HireDate       string           `json:"hire_date"`
	EmploymentType string           `json:"employment_type"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
	Active         bool             `json:"active"`
}

type EmployeeFilter struct {
	DepartmentID   *string
	EmploymentType *string
	ActiveOnly     bool
}
