package models

import (
	"time"

	"github.com/google/uuid"
)

type Token struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name            string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Ticker          string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	ImageURL        *string   `gorm:"type:text"`
	Amount          float64   `gorm:"not null;default:0"`
	CreatorAddress  string    `gorm:"type:varchar(255);not null;index"`
	ContractAddress *string   `gorm:"type:varchar(255)"`
	Website         *string   `gorm:"type:text"`
	CreatedAt       time.Time
}

func (Token) TableName() string {
	return "token"
}
