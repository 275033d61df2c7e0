package domain

import (
	"fmt"
	"time"
)

// UnlimitedQuantity marks a prize with no stock limit.
const UnlimitedQuantity int32 = -1

type BonusProgram struct {
	ID                string
	Title             string
	Description       string
	FullDescription   string
	ImageURL          string
	RequestButtonText string
	MinThreshold      float64
	MaxAmount         float64
	Enabled           bool
	Levels            []Level
	Prizes            []Prize
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Level struct {
	ID              string
	Name            string
	MinPoints       float64
	CashbackPercent float64
	Color           string
	Benefits        string
}

type Prize struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	PointsCost  float64
	Quantity    int32
	Enabled     bool
}

// Unlimited reports whether the prize has no stock limit.
func (p *Prize) Unlimited() bool {
	return p.Quantity == UnlimitedQuantity
}

// Available reports whether the prize can be redeemed at all:
// enabled and either unlimited or still in stock.
func (p *Prize) Available() bool {
	return p.Enabled && (p.Unlimited() || p.Quantity > 0)
}

// Validate checks program configuration before it is persisted.
// Level thresholds must be strictly increasing after sorting so that
// tiers partition the non-negative line without overlaps.
func (bp *BonusProgram) Validate() error {
	if bp.Title == "" {
		return fmt.Errorf("%w: program title is required", ErrValidation)
	}
	if bp.MinThreshold < 0 {
		return fmt.Errorf("%w: min_threshold must not be negative", ErrValidation)
	}
	if bp.MaxAmount < 0 {
		return fmt.Errorf("%w: max_amount must not be negative", ErrValidation)
	}
	sorted := SortedLevels(bp.Levels)
	for i, level := range sorted {
		if level.Name == "" {
			return fmt.Errorf("%w: level name is required", ErrValidation)
		}
		if level.MinPoints < 0 {
			return fmt.Errorf("%w: level %q has negative min_points", ErrValidation, level.Name)
		}
		if level.CashbackPercent < 0 || level.CashbackPercent > 100 {
			return fmt.Errorf("%w: level %q cashback_percent must be within [0, 100]", ErrValidation, level.Name)
		}
		if i > 0 && level.MinPoints <= sorted[i-1].MinPoints {
			return fmt.Errorf("%w: level %q duplicates threshold %.2f", ErrValidation, level.Name, level.MinPoints)
		}
	}
	for _, prize := range bp.Prizes {
		if prize.Name == "" {
			return fmt.Errorf("%w: prize name is required", ErrValidation)
		}
		if prize.PointsCost < 0 {
			return fmt.Errorf("%w: prize %q has negative points_cost", ErrValidation, prize.Name)
		}
		if prize.Quantity < UnlimitedQuantity {
			return fmt.Errorf("%w: prize %q has invalid quantity", ErrValidation, prize.Name)
		}
	}
	return nil
}

// FindPrize returns the prize with the given id or nil.
func (bp *BonusProgram) FindPrize(prizeID string) *Prize {
	for i := range bp.Prizes {
		if bp.Prizes[i].ID == prizeID {
			return &bp.Prizes[i]
		}
	}
	return nil
}
