package attendance

import "time"

type PunchType string

const (
	PunchTypeIn  PunchType = "IN"
	PunchTypeOut PunchType = "OUT"
)

func (t PunchType) Valid() bool {
	return t == PunchTypeIn || t == PunchTypeOut
}

// Punch is a single clock event. No IN/OUT pairing is enforced at write
// time; pairing is inferred when hours are computed.
type Punch struct {
	ID         string
	EmployeeID string
	PunchTime  time.Time
	PunchType  PunchType
	CreatedAt  time.Time
}
