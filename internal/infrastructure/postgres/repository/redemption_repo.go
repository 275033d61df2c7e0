package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultRedemptionRepository struct {
	DB *gorm.DB
}

func NewDefaultRedemptionRepository(db *gorm.DB) *DefaultRedemptionRepository {
	return &DefaultRedemptionRepository{DB: db}
}

// RedeemPrize commits the redemption in one transaction. Both mutations
// are conditional updates, so the preconditions hold at the instant of
// commit: a stock decrement only lands while quantity > 0 and a points
// deduction only lands while the balance covers the cost. Losing racers
// see zero affected rows and roll back untouched.
func (r *DefaultRedemptionRepository) RedeemPrize(userID, programID, prizeID string) (*domain.Redemption, error) {
	var redemption *domain.Redemption
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var programModel models.BonusProgramModel
		if err := tx.First(&programModel, "id = ?", programID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProgramNotFound
			}
			return err
		}
		if !programModel.Enabled {
			return domain.ErrProgramDisabled
		}

		var prizeModel models.PrizeModel
		if err := tx.First(&prizeModel, "id = ? AND program_id = ?", prizeID, programID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPrizeNotFound
			}
			return err
		}
		if !prizeModel.Enabled {
			return domain.ErrPrizeUnavailable
		}

		if prizeModel.Quantity != domain.UnlimitedQuantity {
			result := tx.Model(&models.PrizeModel{}).
				Where("id = ? AND enabled = ? AND quantity > 0", prizeID, true).
				Update("quantity", gorm.Expr("quantity - 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrInsufficientStock
			}
		}

		result := tx.Model(&models.UserProgramProgressModel{}).
			Where("user_id = ? AND program_id = ? AND bonus_points >= ?", userID, programID, prizeModel.PointsCost).
			Update("bonus_points", gorm.Expr("bonus_points - ?", prizeModel.PointsCost))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrInsufficientPoints
		}

		redemption = &domain.Redemption{
			ID:         uuid.NewString(),
			UserID:     userID,
			ProgramID:  programID,
			PrizeID:    prizeID,
			PrizeName:  prizeModel.Name,
			PointsCost: prizeModel.PointsCost,
			CreatedAt:  time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redemption, nil
}
