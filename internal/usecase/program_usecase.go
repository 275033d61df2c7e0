package usecase

import (
	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	programdto "github.com/LavaJover/shvark-loyalty-service/internal/usecase/dto/program"
	"github.com/google/uuid"
)

type ProgramUsecase interface {
	CreateProgram(input *programdto.CreateProgramInput) (*domain.BonusProgram, error)
	UpdateProgram(input *programdto.UpdateProgramInput) (*domain.BonusProgram, error)
	DeleteProgram(programID string) error
	GetProgram(programID string) (*domain.BonusProgram, error)
	ListPrograms(enabledOnly bool) ([]*domain.BonusProgram, error)
}

type DefaultProgramUsecase struct {
	ProgramRepo domain.ProgramRepository
}

func NewDefaultProgramUsecase(programRepo domain.ProgramRepository) *DefaultProgramUsecase {
	return &DefaultProgramUsecase{ProgramRepo: programRepo}
}

func (uc *DefaultProgramUsecase) CreateProgram(input *programdto.CreateProgramInput) (*domain.BonusProgram, error) {
	program := buildProgram(uuid.NewString(), input.Title, input.Description, input.FullDescription,
		input.ImageURL, input.RequestButtonText, input.MinThreshold, input.MaxAmount, input.Enabled,
		input.Levels, input.Prizes)
	if err := program.Validate(); err != nil {
		return nil, err
	}
	if err := uc.ProgramRepo.CreateProgram(program); err != nil {
		return nil, err
	}
	return uc.ProgramRepo.GetProgramByID(program.ID)
}

func (uc *DefaultProgramUsecase) UpdateProgram(input *programdto.UpdateProgramInput) (*domain.BonusProgram, error) {
	if _, err := uc.ProgramRepo.GetProgramByID(input.ID); err != nil {
		return nil, err
	}
	program := buildProgram(input.ID, input.Title, input.Description, input.FullDescription,
		input.ImageURL, input.RequestButtonText, input.MinThreshold, input.MaxAmount, input.Enabled,
		input.Levels, input.Prizes)
	if err := program.Validate(); err != nil {
		return nil, err
	}
	if err := uc.ProgramRepo.UpdateProgram(program); err != nil {
		return nil, err
	}
	return uc.ProgramRepo.GetProgramByID(program.ID)
}

func (uc *DefaultProgramUsecase) DeleteProgram(programID string) error {
	return uc.ProgramRepo.DeleteProgram(programID)
}

func (uc *DefaultProgramUsecase) GetProgram(programID string) (*domain.BonusProgram, error) {
	return uc.ProgramRepo.GetProgramByID(programID)
}

func (uc *DefaultProgramUsecase) ListPrograms(enabledOnly bool) ([]*domain.BonusProgram, error) {
	return uc.ProgramRepo.ListPrograms(enabledOnly)
}

// buildProgram assigns fresh ids to levels and prizes: admin writes
// replace the configuration wholesale (last-writer-wins).
func buildProgram(
	id, title, description, fullDescription, imageURL, requestButtonText string,
	minThreshold, maxAmount float64, enabled bool,
	levels []programdto.LevelInput, prizes []programdto.PrizeInput,
) *domain.BonusProgram {
	program := &domain.BonusProgram{
		ID:                id,
		Title:             title,
		Description:       description,
		FullDescription:   fullDescription,
		ImageURL:          imageURL,
		RequestButtonText: requestButtonText,
		MinThreshold:      minThreshold,
		MaxAmount:         maxAmount,
		Enabled:           enabled,
	}
	for _, level := range levels {
		program.Levels = append(program.Levels, domain.Level{
			ID:              uuid.NewString(),
			Name:            level.Name,
			MinPoints:       level.MinPoints,
			CashbackPercent: level.CashbackPercent,
			Color:           level.Color,
			Benefits:        level.Benefits,
		})
	}
	for _, prize := range prizes {
		program.Prizes = append(program.Prizes, domain.Prize{
			ID:          uuid.NewString(),
			Name:        prize.Name,
			Description: prize.Description,
			ImageURL:    prize.ImageURL,
			PointsCost:  prize.PointsCost,
			Quantity:    prize.Quantity,
			Enabled:     prize.Enabled,
		})
	}
	program.Levels = domain.SortedLevels(program.Levels)
	return program
}
