package models

import "time"

type UserProgramProgressModel struct {
	UserID           string `gorm:"primaryKey"`
	ProgramID        string `gorm:"primaryKey;type:uuid"`
	BonusPoints      float64
	YearlyTotal      float64
	YearlyOrderCount int32
	CurrentYear      int
	BonusRequested   bool `gorm:"index:idx_progress_requested"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
