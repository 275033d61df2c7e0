package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProgressRepository struct {
	DB *gorm.DB
}

func NewDefaultProgressRepository(db *gorm.DB) *DefaultProgressRepository {
	return &DefaultProgressRepository{DB: db}
}

func (r *DefaultProgressRepository) GetProgress(userID, programID string) (*domain.UserProgramProgress, error) {
	var progressModel models.UserProgramProgressModel
	err := r.DB.First(&progressModel, "user_id = ? AND program_id = ?", userID, programID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgress(&progressModel), nil
}

func (r *DefaultProgressRepository) SaveProgress(progress *domain.UserProgramProgress) error {
	progressModel := mappers.ToGORMProgress(progress)
	if err := r.DB.Save(progressModel).Error; err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (r *DefaultProgressRepository) ListProgressByUser(userID string) ([]*domain.UserProgramProgress, error) {
	var progressModels []models.UserProgramProgressModel
	if err := r.DB.Where("user_id = ?", userID).Find(&progressModels).Error; err != nil {
		return nil, err
	}
	return toDomainProgressList(progressModels), nil
}

func (r *DefaultProgressRepository) ListProgressByProgram(programID string) ([]*domain.UserProgramProgress, error) {
	var progressModels []models.UserProgramProgressModel
	if err := r.DB.Where("program_id = ?", programID).Order("yearly_total DESC").Find(&progressModels).Error; err != nil {
		return nil, err
	}
	return toDomainProgressList(progressModels), nil
}

// MarkRequested is a conditional update: the flag flips only when it is
// currently cleared, so two racing requests produce exactly one transition.
func (r *DefaultProgressRepository) MarkRequested(userID, programID string) error {
	result := r.DB.Model(&models.UserProgramProgressModel{}).
		Where("user_id = ? AND program_id = ? AND bonus_requested = ?", userID, programID, false).
		Update("bonus_requested", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyRequested
	}
	return nil
}

func toDomainProgressList(progressModels []models.UserProgramProgressModel) []*domain.UserProgramProgress {
	progress := make([]*domain.UserProgramProgress, len(progressModels))
	for i := range progressModels {
		progress[i] = mappers.ToDomainProgress(&progressModels[i])
	}
	return progress
}
