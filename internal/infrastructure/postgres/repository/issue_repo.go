package repository

import (
	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultIssueRepository struct {
	DB *gorm.DB
}

func NewDefaultIssueRepository(db *gorm.DB) *DefaultIssueRepository {
	return &DefaultIssueRepository{DB: db}
}

// IssueBonus clears the outstanding request and appends the history
// entry in one transaction. The flag flip is conditional on the request
// actually being outstanding, so a double issue fails instead of
// writing a second history entry.
func (r *DefaultIssueRepository) IssueBonus(entry *domain.HistoryEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.UserProgramProgressModel{}).
			Where("user_id = ? AND program_id = ? AND bonus_requested = ?", entry.UserID, entry.ProgramID, true).
			Update("bonus_requested", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotRequested
		}
		return tx.Create(mappers.ToGORMHistoryEntry(entry)).Error
	})
}
