package repository

import (
	"fmt"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// The ledger is append-only: no update or delete methods exist on
// purpose. Corrections are compensating entries.
type DefaultHistoryRepository struct {
	DB *gorm.DB
}

func NewDefaultHistoryRepository(db *gorm.DB) *DefaultHistoryRepository {
	return &DefaultHistoryRepository{DB: db}
}

func (r *DefaultHistoryRepository) Append(entry *domain.HistoryEntry) error {
	if err := r.DB.Create(mappers.ToGORMHistoryEntry(entry)).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

func (r *DefaultHistoryRepository) ListByUser(userID string) ([]*domain.HistoryEntry, error) {
	var entryModels []models.HistoryEntryModel
	if err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainHistoryList(entryModels), nil
}

func (r *DefaultHistoryRepository) ListAll() ([]*domain.HistoryEntry, error) {
	var entryModels []models.HistoryEntryModel
	if err := r.DB.Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainHistoryList(entryModels), nil
}

func toDomainHistoryList(entryModels []models.HistoryEntryModel) []*domain.HistoryEntry {
	entries := make([]*domain.HistoryEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = mappers.ToDomainHistoryEntry(&entryModels[i])
	}
	return entries
}
