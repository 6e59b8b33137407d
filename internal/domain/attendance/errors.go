package attendance

import "errors"

var (
	ErrPunchNotFound    = errors.New("punch not found")
	ErrInvalidPunchType = errors.New("invalid punch type")
)
