package domain

import "time"

// HistoryEntry records one issued bonus code. Entries are immutable:
// the ledger is append-only and corrections are new compensating
// entries, never in-place edits. ProgramTitle is denormalized so the
// entry stays readable after the program is renamed or deleted.
type HistoryEntry struct {
	ID            string
	UserID        string
	ProgramID     string
	ProgramTitle  string
	BonusCode     string
	AmountAtIssue float64
	IssuedBy      string
	CreatedAt     time.Time
}

type HistoryRepository interface {
	Append(entry *HistoryEntry) error
	ListByUser(userID string) ([]*HistoryEntry, error)
	ListAll() ([]*HistoryEntry, error)
}
