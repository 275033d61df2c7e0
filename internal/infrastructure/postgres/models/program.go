package models

import (
	"time"

	"gorm.io/gorm"
)

type BonusProgramModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	Title             string
	Description       string
	FullDescription   string
	ImageURL          string
	RequestButtonText string
	MinThreshold      float64
	MaxAmount         float64
	Enabled           bool         `gorm:"index:idx_program_enabled"`
	Levels            []LevelModel `gorm:"foreignKey:ProgramID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Prizes            []PrizeModel `gorm:"foreignKey:ProgramID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

type LevelModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	ProgramID       string `gorm:"type:uuid;index:idx_level_program"`
	Name            string
	MinPoints       float64
	CashbackPercent float64
	Color           string
	Benefits        string
}

type PrizeModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	ProgramID   string `gorm:"type:uuid;index:idx_prize_program"`
	Name        string
	Description string
	ImageURL    string
	PointsCost  float64
	Quantity    int32
	Enabled     bool
}
