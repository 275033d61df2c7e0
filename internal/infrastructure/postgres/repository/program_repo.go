package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProgramRepository struct {
	DB *gorm.DB
}

func NewDefaultProgramRepository(db *gorm.DB) *DefaultProgramRepository {
	return &DefaultProgramRepository{DB: db}
}

func (r *DefaultProgramRepository) CreateProgram(program *domain.BonusProgram) error {
	programModel := mappers.ToGORMProgram(program)
	if err := r.DB.Create(programModel).Error; err != nil {
		return fmt.Errorf("failed to create bonus program: %w", err)
	}
	return nil
}

// UpdateProgram is last-writer-wins: program fields are replaced and the
// level/prize sets are rewritten wholesale inside one transaction.
func (r *DefaultProgramRepository) UpdateProgram(program *domain.BonusProgram) error {
	programModel := mappers.ToGORMProgram(program)
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.BonusProgramModel
		if err := tx.First(&existing, "id = ?", program.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProgramNotFound
			}
			return err
		}
		if err := tx.Where("program_id = ?", program.ID).Delete(&models.LevelModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", program.ID).Delete(&models.PrizeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.BonusProgramModel{}).Where("id = ?", program.ID).
			Select("Title", "Description", "FullDescription", "ImageURL",
				"RequestButtonText", "MinThreshold", "MaxAmount", "Enabled").
			Updates(programModel).Error; err != nil {
			return err
		}
		if len(programModel.Levels) > 0 {
			if err := tx.Create(&programModel.Levels).Error; err != nil {
				return err
			}
		}
		if len(programModel.Prizes) > 0 {
			if err := tx.Create(&programModel.Prizes).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultProgramRepository) DeleteProgram(programID string) error {
	result := r.DB.Delete(&models.BonusProgramModel{}, "id = ?", programID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}

func (r *DefaultProgramRepository) GetProgramByID(programID string) (*domain.BonusProgram, error) {
	var programModel models.BonusProgramModel
	err := r.DB.Preload("Levels").Preload("Prizes").
		First(&programModel, "id = ?", programID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgram(&programModel), nil
}

func (r *DefaultProgramRepository) ListPrograms(enabledOnly bool) ([]*domain.BonusProgram, error) {
	var programModels []models.BonusProgramModel
	query := r.DB.Preload("Levels").Preload("Prizes").Order("created_at ASC")
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}
	if err := query.Find(&programModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list bonus programs: %w", err)
	}
	programs := make([]*domain.BonusProgram, len(programModels))
	for i := range programModels {
		programs[i] = mappers.ToDomainProgram(&programModels[i])
	}
	return programs, nil
}
