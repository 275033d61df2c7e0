package domain

import "time"

// UserProgramProgress is the accrual state of one user inside one
// bonus program. YearlyTotal drives the tier and restarts every
// calendar year; BonusPoints is the spendable balance and survives
// the year boundary.
type UserProgramProgress struct {
	UserID           string
	ProgramID        string
	BonusPoints      float64
	YearlyTotal      float64
	YearlyOrderCount int32
	CurrentYear      int
	BonusRequested   bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ProgressRepository interface {
	GetProgress(userID, programID string) (*UserProgramProgress, error)
	SaveProgress(progress *UserProgramProgress) error
	ListProgressByUser(userID string) ([]*UserProgramProgress, error)
	ListProgressByProgram(programID string) ([]*UserProgramProgress, error)

	// MarkRequested flips bonus_requested from false to true and
	// fails with ErrAlreadyRequested when the flag is already set.
	MarkRequested(userID, programID string) error
}
