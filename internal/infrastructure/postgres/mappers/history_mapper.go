package mappers

import (
	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainHistoryEntry(model *models.HistoryEntryModel) *domain.HistoryEntry {
	return &domain.HistoryEntry{
		ID:            model.ID,
		UserID:        model.UserID,
		ProgramID:     model.ProgramID,
		ProgramTitle:  model.ProgramTitle,
		BonusCode:     model.BonusCode,
		AmountAtIssue: model.AmountAtIssue,
		IssuedBy:      model.IssuedBy,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMHistoryEntry(entry *domain.HistoryEntry) *models.HistoryEntryModel {
	return &models.HistoryEntryModel{
		ID:            entry.ID,
		UserID:        entry.UserID,
		ProgramID:     entry.ProgramID,
		ProgramTitle:  entry.ProgramTitle,
		BonusCode:     entry.BonusCode,
		AmountAtIssue: entry.AmountAtIssue,
		IssuedBy:      entry.IssuedBy,
		CreatedAt:     entry.CreatedAt,
	}
}
