package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ad struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Level     int       `gorm:"not null;default:0"`
	PaidFor   bool      `gorm:"not null;default:false"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Views     int64     `gorm:"not null;default:0"`
	Clicks    int64     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
