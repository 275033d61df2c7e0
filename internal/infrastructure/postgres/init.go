package postgres

import (
	"log"

	"github.com/LavaJover/shvark-loyalty-service/internal/config"
	"github.com/LavaJover/shvark-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.LoyaltyConfig) *gorm.DB {
	dsn := cfg.LoyaltyDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.BonusProgramModel{},
		&models.LevelModel{},
		&models.PrizeModel{},
		&models.UserProgramProgressModel{},
		&models.HistoryEntryModel{},
	)

	return db
}
