package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/metrics"
	accrualdto "github.com/LavaJover/shvark-loyalty-service/internal/usecase/dto/accrual"
)

type AccrualUsecase interface {
	Accrue(input *accrualdto.AccrueOrderInput) error
	HandleOrderCompleted(userID string, orderAmount float64, orderTime time.Time)
}

type DefaultAccrualUsecase struct {
	ProgramRepo  domain.ProgramRepository
	ProgressRepo domain.ProgressRepository
	Publisher    *kafka.DefaultKafkaPublisher
	Metrics      *metrics.LoyaltyMetrics
	BonusTopic   string

	locks keyedMutex
}

func NewDefaultAccrualUsecase(
	programRepo domain.ProgramRepository,
	progressRepo domain.ProgressRepository,
	kafkaPublisher *kafka.DefaultKafkaPublisher,
	loyaltyMetrics *metrics.LoyaltyMetrics,
	bonusTopic string) *DefaultAccrualUsecase {

	return &DefaultAccrualUsecase{
		ProgramRepo:  programRepo,
		ProgressRepo: progressRepo,
		Publisher:    kafkaPublisher,
		Metrics:      loyaltyMetrics,
		BonusTopic:   bonusTopic,
	}
}

// Accrue applies one completed order to one program. The whole
// read-modify-write runs under the per-(user, program) lock so that
// concurrent order completions for the same user cannot lose updates.
func (uc *DefaultAccrualUsecase) Accrue(input *accrualdto.AccrueOrderInput) error {
	if input.OrderAmount <= 0 {
		return fmt.Errorf("%w: order amount must be positive", domain.ErrValidation)
	}
	program, err := uc.ProgramRepo.GetProgramByID(input.ProgramID)
	if err != nil {
		return err
	}
	if !program.Enabled {
		return domain.ErrProgramDisabled
	}

	mu := uc.locks.Lock(progressKey(input.UserID, input.ProgramID))
	defer mu.Unlock()

	progress, err := uc.ProgressRepo.GetProgress(input.UserID, input.ProgramID)
	if err != nil {
		if err != domain.ErrProgressNotFound {
			return err
		}
		// Lazy creation on the first qualifying order
		progress = &domain.UserProgramProgress{
			UserID:      input.UserID,
			ProgramID:   input.ProgramID,
			CurrentYear: input.OrderTime.Year(),
			CreatedAt:   time.Now(),
		}
	}

	// Tier standing restarts each calendar year; the spendable
	// balance survives the boundary.
	orderYear := input.OrderTime.Year()
	if orderYear != progress.CurrentYear {
		progress.YearlyTotal = 0
		progress.YearlyOrderCount = 0
		progress.CurrentYear = orderYear
	}

	progress.YearlyTotal += input.OrderAmount
	progress.YearlyOrderCount++

	level := domain.ResolveLevel(program.Levels, progress.YearlyTotal)
	var points float64
	levelName := ""
	if level != nil {
		points = input.OrderAmount * level.CashbackPercent / 100
		levelName = level.Name
	}
	progress.BonusPoints += points
	if program.MaxAmount > 0 && progress.BonusPoints > program.MaxAmount {
		progress.BonusPoints = program.MaxAmount
	}
	progress.UpdatedAt = time.Now()

	if err := uc.ProgressRepo.SaveProgress(progress); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordAccrual(input.ProgramID, levelName, points)
	}
	uc.publishAccrued(input, points, levelName, progress.YearlyTotal)

	return nil
}

// HandleOrderCompleted fans one completed order out to every enabled
// program. Accrual is best-effort relative to order processing:
// failures are logged and skipped, never propagated to the order flow.
func (uc *DefaultAccrualUsecase) HandleOrderCompleted(userID string, orderAmount float64, orderTime time.Time) {
	programs, err := uc.ProgramRepo.ListPrograms(true)
	if err != nil {
		slog.Error("failed to list bonus programs for accrual", "error", err.Error())
		if uc.Metrics != nil {
			uc.Metrics.RecordAccrualError("list_programs")
		}
		return
	}
	for _, program := range programs {
		err := uc.Accrue(&accrualdto.AccrueOrderInput{
			UserID:      userID,
			ProgramID:   program.ID,
			OrderAmount: orderAmount,
			OrderTime:   orderTime,
		})
		if err != nil {
			slog.Error("bonus accrual skipped",
				"user_id", userID,
				"program_id", program.ID,
				"error", err.Error())
			if uc.Metrics != nil {
				uc.Metrics.RecordAccrualError("accrue_failed")
			}
		}
	}
}

func (uc *DefaultAccrualUsecase) publishAccrued(input *accrualdto.AccrueOrderInput, points float64, levelName string, yearlyTotal float64) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.BonusAccruedEvent) {
		if err := uc.Publisher.PublishEvent(uc.BonusTopic, event.UserID, event); err != nil {
			slog.Error("failed to publish kafka BonusAccruedEvent", "error", err.Error())
		}
	}(kafka.BonusAccruedEvent{
		UserID:      input.UserID,
		ProgramID:   input.ProgramID,
		OrderAmount: input.OrderAmount,
		Points:      points,
		LevelName:   levelName,
		YearlyTotal: yearlyTotal,
	})
}
