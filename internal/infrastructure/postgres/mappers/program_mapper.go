package mappers

import (
	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainProgram(model *models.BonusProgramModel) *domain.BonusProgram {
	levels := make([]domain.Level, len(model.Levels))
	for i, levelModel := range model.Levels {
		levels[i] = domain.Level{
			ID:              levelModel.ID,
			Name:            levelModel.Name,
			MinPoints:       levelModel.MinPoints,
			CashbackPercent: levelModel.CashbackPercent,
			Color:           levelModel.Color,
			Benefits:        levelModel.Benefits,
		}
	}
	prizes := make([]domain.Prize, len(model.Prizes))
	for i, prizeModel := range model.Prizes {
		prizes[i] = domain.Prize{
			ID:          prizeModel.ID,
			Name:        prizeModel.Name,
			Description: prizeModel.Description,
			ImageURL:    prizeModel.ImageURL,
			PointsCost:  prizeModel.PointsCost,
			Quantity:    prizeModel.Quantity,
			Enabled:     prizeModel.Enabled,
		}
	}
	return &domain.BonusProgram{
		ID:                model.ID,
		Title:             model.Title,
		Description:       model.Description,
		FullDescription:   model.FullDescription,
		ImageURL:          model.ImageURL,
		RequestButtonText: model.RequestButtonText,
		MinThreshold:      model.MinThreshold,
		MaxAmount:         model.MaxAmount,
		Enabled:           model.Enabled,
		Levels:            domain.SortedLevels(levels),
		Prizes:            prizes,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMProgram(program *domain.BonusProgram) *models.BonusProgramModel {
	levelModels := make([]models.LevelModel, len(program.Levels))
	for i, level := range program.Levels {
		levelModels[i] = models.LevelModel{
			ID:              level.ID,
			ProgramID:       program.ID,
			Name:            level.Name,
			MinPoints:       level.MinPoints,
			CashbackPercent: level.CashbackPercent,
			Color:           level.Color,
			Benefits:        level.Benefits,
		}
	}
	prizeModels := make([]models.PrizeModel, len(program.Prizes))
	for i, prize := range program.Prizes {
		prizeModels[i] = models.PrizeModel{
			ID:          prize.ID,
			ProgramID:   program.ID,
			Name:        prize.Name,
			Description: prize.Description,
			ImageURL:    prize.ImageURL,
			PointsCost:  prize.PointsCost,
			Quantity:    prize.Quantity,
			Enabled:     prize.Enabled,
		}
	}
	return &models.BonusProgramModel{
		ID:                program.ID,
		Title:             program.Title,
		Description:       program.Description,
		FullDescription:   program.FullDescription,
		ImageURL:          program.ImageURL,
		RequestButtonText: program.RequestButtonText,
		MinThreshold:      program.MinThreshold,
		MaxAmount:         program.MaxAmount,
		Enabled:           program.Enabled,
		Levels:            levelModels,
		Prizes:            prizeModels,
		CreatedAt:         program.CreatedAt,
		UpdatedAt:         program.UpdatedAt,
	}
}
