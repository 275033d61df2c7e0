package mappers

import (
	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainProgress(model *models.UserProgramProgressModel) *domain.UserProgramProgress {
	return &domain.UserProgramProgress{
		UserID:           model.UserID,
		ProgramID:        model.ProgramID,
		BonusPoints:      model.BonusPoints,
		YearlyTotal:      model.YearlyTotal,
		YearlyOrderCount: model.YearlyOrderCount,
		CurrentYear:      model.CurrentYear,
		BonusRequested:   model.BonusRequested,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMProgress(progress *domain.UserProgramProgress) *models.UserProgramProgressModel {
	return &models.UserProgramProgressModel{
		UserID:           progress.UserID,
		ProgramID:        progress.ProgramID,
		BonusPoints:      progress.BonusPoints,
		YearlyTotal:      progress.YearlyTotal,
		YearlyOrderCount: progress.YearlyOrderCount,
		CurrentYear:      progress.CurrentYear,
		BonusRequested:   progress.BonusRequested,
		CreatedAt:        progress.CreatedAt,
		UpdatedAt:        progress.UpdatedAt,
	}
}
