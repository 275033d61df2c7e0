package domain

type ProgramRepository interface {
	CreateProgram(program *BonusProgram) error
	UpdateProgram(program *BonusProgram) error
	// DeleteProgram soft-deletes: later accrual and redemption against
	// the id fail with ErrProgramNotFound, history keeps the title.
	DeleteProgram(programID string) error
	GetProgramByID(programID string) (*BonusProgram, error)
	ListPrograms(enabledOnly bool) ([]*BonusProgram, error)
}
