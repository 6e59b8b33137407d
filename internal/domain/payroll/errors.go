package payroll

import "errors"

var (
	ErrPeriodNotFound         = errors.New("payroll period not found")
	ErrPeriodAlreadyProcessed = errors.New("payroll period already processed")
	ErrSalaryNotFound         = errors.New("salary not found")
	ErrSalaryItemNotFound     = errors.New("salary item not found")
	ErrSalaryItemNameExists   = errors.New("salary item name already exists")
	ErrInvalidItemType        = errors.New("invalid salary item type")
)
