package domain

import "time"

// Redemption is the receipt of a successful prize redemption. Prizes
// are fulfilled out-of-band, so the receipt is an audit record rather
// than a shipment order.
type Redemption struct {
	ID         string
	UserID     string
	ProgramID  string
	PrizeID    string
	PrizeName  string
	PointsCost float64
	CreatedAt  time.Time
}

// RedemptionRepository executes the redemption against the store.
// The implementation must make the whole effect atomic: either both
// the points deduction and the stock decrement commit, or neither.
type RedemptionRepository interface {
	RedeemPrize(userID, programID, prizeID string) (*Redemption, error)
}

// IssueRepository executes the administrative code issuance: clears
// the outstanding request flag and appends the history entry in one
// transaction. Fails with ErrNotRequested when no request is pending.
type IssueRepository interface {
	IssueBonus(entry *HistoryEntry) error
}
