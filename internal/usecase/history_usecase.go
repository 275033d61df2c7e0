package usecase

import "github.com/LavaJover/shvark-loyalty-service/internal/domain"

type HistoryUsecase interface {
	GetUserHistory(userID string) ([]*domain.HistoryEntry, error)
	GetAllHistory() ([]*domain.HistoryEntry, error)
}

type DefaultHistoryUsecase struct {
	HistoryRepo domain.HistoryRepository
}

func NewDefaultHistoryUsecase(historyRepo domain.HistoryRepository) *DefaultHistoryUsecase {
	return &DefaultHistoryUsecase{HistoryRepo: historyRepo}
}

func (uc *DefaultHistoryUsecase) GetUserHistory(userID string) ([]*domain.HistoryEntry, error) {
	return uc.HistoryRepo.ListByUser(userID)
}

func (uc *DefaultHistoryUsecase) GetAllHistory() ([]*domain.HistoryEntry, error) {
	return uc.HistoryRepo.ListAll()
}
