package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidLeaveType      = errors.New("invalid leave type")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
)
