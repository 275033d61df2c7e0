package accrualdto

import "time"

type AccrueOrderInput struct {
	UserID      string
	ProgramID   string
	OrderAmount float64
	OrderTime   time.Time
}
