package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	AdLevel    int       `gorm:"not null"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;index"`
	SettledAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
