package models

import "time"

type HistoryEntryModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	UserID        string `gorm:"index:idx_history_user"`
	ProgramID     string `gorm:"type:uuid"`
	ProgramTitle  string
	BonusCode     string
	AmountAtIssue float64
	IssuedBy      string
	CreatedAt     time.Time `gorm:"index:idx_history_created_at"`
}
