package usecase

import (
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	progressdto "github.com/LavaJover/shvark-loyalty-service/internal/usecase/dto/progress"
)

type ProgressUsecase interface {
	GetUserPrograms(userID string) ([]*progressdto.UserProgramOutput, error)
	ListProgramUsers(programID string) ([]*progressdto.ProgramUserOutput, error)
}

type DefaultProgressUsecase struct {
	ProgramRepo  domain.ProgramRepository
	ProgressRepo domain.ProgressRepository
}

func NewDefaultProgressUsecase(programRepo domain.ProgramRepository, progressRepo domain.ProgressRepository) *DefaultProgressUsecase {
	return &DefaultProgressUsecase{
		ProgramRepo:  programRepo,
		ProgressRepo: progressRepo,
	}
}

// GetUserPrograms builds the user dashboard: every enabled program
// joined with the caller's progress. Progress rows of deleted programs
// are inert and never show up here.
func (uc *DefaultProgressUsecase) GetUserPrograms(userID string) ([]*progressdto.UserProgramOutput, error) {
	programs, err := uc.ProgramRepo.ListPrograms(true)
	if err != nil {
		return nil, err
	}
	progressList, err := uc.ProgressRepo.ListProgressByUser(userID)
	if err != nil {
		return nil, err
	}
	progressByProgram := make(map[string]*domain.UserProgramProgress, len(progressList))
	for _, progress := range progressList {
		progressByProgram[progress.ProgramID] = progress
	}

	now := time.Now()
	outputs := make([]*progressdto.UserProgramOutput, 0, len(programs))
	for _, program := range programs {
		progress := progressByProgram[program.ID]
		if progress == nil {
			progress = &domain.UserProgramProgress{
				UserID:      userID,
				ProgramID:   program.ID,
				CurrentYear: now.Year(),
			}
		}
		outputs = append(outputs, buildUserProgramOutput(program, progress, now))
	}
	return outputs, nil
}

func (uc *DefaultProgressUsecase) ListProgramUsers(programID string) ([]*progressdto.ProgramUserOutput, error) {
	if _, err := uc.ProgramRepo.GetProgramByID(programID); err != nil {
		return nil, err
	}
	progressList, err := uc.ProgressRepo.ListProgressByProgram(programID)
	if err != nil {
		return nil, err
	}
	outputs := make([]*progressdto.ProgramUserOutput, len(progressList))
	for i, progress := range progressList {
		outputs[i] = &progressdto.ProgramUserOutput{
			UserID:           progress.UserID,
			BonusPoints:      progress.BonusPoints,
			YearlyTotal:      progress.YearlyTotal,
			YearlyOrderCount: progress.YearlyOrderCount,
			CurrentYear:      progress.CurrentYear,
			BonusRequested:   progress.BonusRequested,
		}
	}
	return outputs, nil
}

func buildUserProgramOutput(program *domain.BonusProgram, progress *domain.UserProgramProgress, now time.Time) *progressdto.UserProgramOutput {
	// The yearly reset is lazy (applied on the next accrual), so the
	// read path presents the effective values for the current year.
	yearlyTotal := progress.YearlyTotal
	yearlyOrderCount := progress.YearlyOrderCount
	currentYear := progress.CurrentYear
	if currentYear != now.Year() {
		yearlyTotal = 0
		yearlyOrderCount = 0
		currentYear = now.Year()
	}

	output := &progressdto.UserProgramOutput{
		ProgramID:         program.ID,
		Title:             program.Title,
		Description:       program.Description,
		FullDescription:   program.FullDescription,
		ImageURL:          program.ImageURL,
		RequestButtonText: program.RequestButtonText,
		MinThreshold:      program.MinThreshold,
		BonusPoints:       progress.BonusPoints,
		YearlyTotal:       yearlyTotal,
		YearlyOrderCount:  yearlyOrderCount,
		CurrentYear:       currentYear,
		BonusRequested:    progress.BonusRequested,
		AmountToNextLevel: domain.AmountToNextLevel(program.Levels, yearlyTotal),
	}
	if level := domain.ResolveLevel(program.Levels, yearlyTotal); level != nil {
		output.CurrentLevel = toLevelOutput(level)
	}
	if next := domain.NextLevel(program.Levels, yearlyTotal); next != nil {
		output.NextLevel = toLevelOutput(next)
	}
	for _, level := range domain.SortedLevels(program.Levels) {
		output.Levels = append(output.Levels, *toLevelOutput(&level))
	}
	for _, prize := range program.Prizes {
		output.Prizes = append(output.Prizes, progressdto.PrizeOutput{
			ID:          prize.ID,
			Name:        prize.Name,
			Description: prize.Description,
			ImageURL:    prize.ImageURL,
			PointsCost:  prize.PointsCost,
			Quantity:    prize.Quantity,
			Enabled:     prize.Enabled,
		})
	}
	return output
}

func toLevelOutput(level *domain.Level) *progressdto.LevelOutput {
	return &progressdto.LevelOutput{
		ID:              level.ID,
		Name:            level.Name,
		MinPoints:       level.MinPoints,
		CashbackPercent: level.CashbackPercent,
		Color:           level.Color,
		Benefits:        level.Benefits,
	}
}
