package models

import "time"

type WaitlistEntry struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}
