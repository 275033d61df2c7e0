package usecase

import (
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/metrics"
)

type RedemptionUsecase interface {
	RedeemPrize(userID, programID, prizeID string) (*domain.Redemption, error)
}

type DefaultRedemptionUsecase struct {
	RedemptionRepo domain.RedemptionRepository
	Publisher      *kafka.DefaultKafkaPublisher
	Metrics        *metrics.LoyaltyMetrics
	BonusTopic     string

	locks keyedMutex
}

func NewDefaultRedemptionUsecase(
	redemptionRepo domain.RedemptionRepository,
	kafkaPublisher *kafka.DefaultKafkaPublisher,
	loyaltyMetrics *metrics.LoyaltyMetrics,
	bonusTopic string) *DefaultRedemptionUsecase {

	return &DefaultRedemptionUsecase{
		RedemptionRepo: redemptionRepo,
		Publisher:      kafkaPublisher,
		Metrics:        loyaltyMetrics,
		BonusTopic:     bonusTopic,
	}
}

// RedeemPrize exchanges points for a prize. In-process racers are
// serialized by the user and prize locks; the store-level conditional
// updates in the repository remain the authoritative guard, so a
// rejected attempt leaves balance and stock exactly as before.
func (uc *DefaultRedemptionUsecase) RedeemPrize(userID, programID, prizeID string) (*domain.Redemption, error) {
	start := time.Now()
	result := "failed"
	var redeemedPoints float64
	defer func() {
		if uc.Metrics != nil {
			uc.Metrics.RecordRedemption(programID, result, redeemedPoints, time.Since(start).Seconds())
		}
	}()

	// Lock order is fixed (user first, prize second) to avoid deadlock
	// between concurrent redemptions.
	userMu := uc.locks.Lock(progressKey(userID, programID))
	defer userMu.Unlock()
	prizeMu := uc.locks.Lock(prizeKey(programID, prizeID))
	defer prizeMu.Unlock()

	redemption, err := uc.RedemptionRepo.RedeemPrize(userID, programID, prizeID)
	if err != nil {
		result = redemptionResultLabel(err)
		return nil, err
	}
	result = "success"
	redeemedPoints = redemption.PointsCost

	uc.publishRedeemed(redemption)

	return redemption, nil
}

func redemptionResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrPrizeUnavailable), errors.Is(err, domain.ErrPrizeNotFound):
		return "prize_unavailable"
	case errors.Is(err, domain.ErrProgramNotFound), errors.Is(err, domain.ErrProgramDisabled):
		return "program_unavailable"
	default:
		return "failed"
	}
}

func (uc *DefaultRedemptionUsecase) publishRedeemed(redemption *domain.Redemption) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.PrizeRedeemedEvent) {
		if err := uc.Publisher.PublishEvent(uc.BonusTopic, event.UserID, event); err != nil {
			slog.Error("failed to publish kafka PrizeRedeemedEvent", "error", err.Error())
		}
	}(kafka.PrizeRedeemedEvent{
		UserID:     redemption.UserID,
		ProgramID:  redemption.ProgramID,
		PrizeID:    redemption.PrizeID,
		PrizeName:  redemption.PrizeName,
		PointsCost: redemption.PointsCost,
	})
}
