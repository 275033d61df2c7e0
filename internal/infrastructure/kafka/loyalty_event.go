package kafka

// Events emitted by the loyalty engine for downstream consumers
// (notifications, analytics).

type BonusAccruedEvent struct {
	UserID      string  `json:"user_id"`
	ProgramID   string  `json:"program_id"`
	OrderAmount float64 `json:"order_amount"`
	Points      float64 `json:"points"`
	LevelName   string  `json:"level_name,omitempty"`
	YearlyTotal float64 `json:"yearly_total"`
}

type PrizeRedeemedEvent struct {
	UserID     string  `json:"user_id"`
	ProgramID  string  `json:"program_id"`
	PrizeID    string  `json:"prize_id"`
	PrizeName  string  `json:"prize_name"`
	PointsCost float64 `json:"points_cost"`
}

type BonusIssuedEvent struct {
	UserID        string  `json:"user_id"`
	ProgramID     string  `json:"program_id"`
	BonusCode     string  `json:"bonus_code"`
	AmountAtIssue float64 `json:"amount_at_issue"`
	IssuedBy      string  `json:"issued_by"`
}
