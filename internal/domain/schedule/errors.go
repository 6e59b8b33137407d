package schedule

import "errors"

var (
	ErrScheduleNotFound     = errors.New("work schedule not found")
	ErrAssignmentNotFound   = errors.New("schedule assignment not found")
	ErrInvalidScheduleType  = errors.New("invalid schedule type")
	ErrScheduleNameExists   = errors.New("work schedule name already exists")
)
