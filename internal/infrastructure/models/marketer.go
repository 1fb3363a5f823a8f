package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Marketer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Username      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Verified      bool      `gorm:"not null;default:false"`
	BankName      string    `gorm:"type:varchar(100);not null"`
	AccountName   string    `gorm:"type:varchar(255);not null"`
	AccountNumber string    `gorm:"type:varchar(32);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type MarketerEarning struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MarketerID uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null"`
	AdID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Amount     int64     `gorm:"not null"`
	Paid       bool      `gorm:"not null;default:false"`
	PaidAt     *time.Time
	CreatedAt  time.Time
}
