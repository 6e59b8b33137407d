package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/department"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/leave"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidEmploymentType):
		BadRequest(w, "Invalid employment type", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, attendance.ErrInvalidPunchType):
		BadRequest(w, "Invalid punch type", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, schedule.ErrScheduleNameExists):
		Conflict(w, "Work schedule name already exists")
	case errors.Is(err, schedule.ErrInvalidScheduleType):
		BadRequest(w, "Invalid schedule type", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyProcessed):
		Conflict(w, "Payroll period already processed")
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary not found")
	case errors.Is(err, payroll.ErrSalaryItemNotFound):
		NotFound(w, "Salary item not found")
	case errors.Is(err, payroll.ErrSalaryItemNameExists):
		Conflict(w, "Salary item name already exists")
	case errors.Is(err, payroll.ErrInvalidItemType):
		BadRequest(w, "Invalid salary item type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
