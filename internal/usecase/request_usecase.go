package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/metrics"
	"github.com/jaevor/go-nanoid"
)

type BonusRequestUsecase interface {
	RequestBonus(userID, programID string) error
	IssueBonus(userID, programID, bonusCode, issuedBy string) (*domain.HistoryEntry, error)
}

type DefaultBonusRequestUsecase struct {
	ProgramRepo  domain.ProgramRepository
	ProgressRepo domain.ProgressRepository
	IssueRepo    domain.IssueRepository
	Publisher    *kafka.DefaultKafkaPublisher
	Metrics      *metrics.LoyaltyMetrics
	BonusTopic   string

	locks keyedMutex
}

func NewDefaultBonusRequestUsecase(
	programRepo domain.ProgramRepository,
	progressRepo domain.ProgressRepository,
	issueRepo domain.IssueRepository,
	kafkaPublisher *kafka.DefaultKafkaPublisher,
	loyaltyMetrics *metrics.LoyaltyMetrics,
	bonusTopic string) *DefaultBonusRequestUsecase {

	return &DefaultBonusRequestUsecase{
		ProgramRepo:  programRepo,
		ProgressRepo: progressRepo,
		IssueRepo:    issueRepo,
		Publisher:    kafkaPublisher,
		Metrics:      loyaltyMetrics,
		BonusTopic:   bonusTopic,
	}
}

// RequestBonus moves the (user, program) pair from Idle to Requested.
// At most one request may be outstanding per pair: the conditional
// flag flip in the store rejects a second request.
func (uc *DefaultBonusRequestUsecase) RequestBonus(userID, programID string) error {
	program, err := uc.ProgramRepo.GetProgramByID(programID)
	if err != nil {
		uc.recordRequest(programID, "program_not_found")
		return err
	}
	if !program.Enabled {
		uc.recordRequest(programID, "program_disabled")
		return domain.ErrProgramDisabled
	}

	mu := uc.locks.Lock(progressKey(userID, programID))
	defer mu.Unlock()

	progress, err := uc.ProgressRepo.GetProgress(userID, programID)
	if err != nil {
		if err == domain.ErrProgressNotFound {
			uc.recordRequest(programID, "insufficient_points")
			return domain.ErrInsufficientPoints
		}
		return err
	}
	if progress.BonusRequested {
		uc.recordRequest(programID, "already_requested")
		return domain.ErrAlreadyRequested
	}
	if !requestable(program, progress) {
		uc.recordRequest(programID, "insufficient_points")
		return domain.ErrInsufficientPoints
	}

	if err := uc.ProgressRepo.MarkRequested(userID, programID); err != nil {
		uc.recordRequest(programID, "already_requested")
		return err
	}
	uc.recordRequest(programID, "success")
	return nil
}

// IssueBonus is the administrative transition back to Idle: requires
// an outstanding request and a non-empty promo code, appends the
// ledger entry with the balance at the time of issue. The spendable
// balance itself is left untouched; any reduction is a separate
// administrative decision.
func (uc *DefaultBonusRequestUsecase) IssueBonus(userID, programID, bonusCode, issuedBy string) (*domain.HistoryEntry, error) {
	if bonusCode == "" {
		return nil, fmt.Errorf("%w: bonus code is required", domain.ErrValidation)
	}
	program, err := uc.ProgramRepo.GetProgramByID(programID)
	if err != nil {
		return nil, err
	}

	mu := uc.locks.Lock(progressKey(userID, programID))
	defer mu.Unlock()

	progress, err := uc.ProgressRepo.GetProgress(userID, programID)
	if err != nil {
		if err == domain.ErrProgressNotFound {
			return nil, domain.ErrNotRequested
		}
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	entry := &domain.HistoryEntry{
		ID:            idGenerator(),
		UserID:        userID,
		ProgramID:     programID,
		ProgramTitle:  program.Title,
		BonusCode:     bonusCode,
		AmountAtIssue: progress.BonusPoints,
		IssuedBy:      issuedBy,
		CreatedAt:     time.Now(),
	}
	if err := uc.IssueRepo.IssueBonus(entry); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordBonusIssue(programID)
	}
	uc.publishIssued(entry)

	return entry, nil
}

// requestable applies the program threshold: with a configured
// min_threshold the balance must reach it, otherwise any positive
// balance qualifies.
func requestable(program *domain.BonusProgram, progress *domain.UserProgramProgress) bool {
	if program.MinThreshold > 0 {
		return progress.BonusPoints >= program.MinThreshold
	}
	return progress.BonusPoints > 0
}

func (uc *DefaultBonusRequestUsecase) recordRequest(programID, result string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordBonusRequest(programID, result)
	}
}

func (uc *DefaultBonusRequestUsecase) publishIssued(entry *domain.HistoryEntry) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.BonusIssuedEvent) {
		if err := uc.Publisher.PublishEvent(uc.BonusTopic, event.UserID, event); err != nil {
			slog.Error("failed to publish kafka BonusIssuedEvent", "error", err.Error())
		}
	}(kafka.BonusIssuedEvent{
		UserID:        entry.UserID,
		ProgramID:     entry.ProgramID,
		BonusCode:     entry.BonusCode,
		AmountAtIssue: entry.AmountAtIssue,
		IssuedBy:      entry.IssuedBy,
	})
}
