package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	DepartmentID   string
	HireDate       time.Time
	EmploymentType EmploymentType
	BaseSalary     *decimal.Decimal // monthly, full-time only
	HourlyRate     *decimal.Decimal // part-time only
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	DepartmentName *string
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
)

func (t EmploymentType) Valid() bool {
	return t == EmploymentTypeFullTime || t == EmploymentTypePartTime
}
