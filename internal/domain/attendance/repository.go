package attendance

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)
	// GetByEmployeeAndDate returns the punches stamped on the calendar day of
	// date, ordered by punch time ascending.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error)
}
