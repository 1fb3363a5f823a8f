package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	BrandName       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Phone1          string    `gorm:"type:varchar(20);not null"`
	Phone2          *string   `gorm:"type:varchar(20)"`
	MarketID        *uuid.UUID `gorm:"type:uuid;index"`
	ReferredBy      *uuid.UUID `gorm:"type:uuid;index"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
