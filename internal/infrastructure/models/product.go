package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text;not null"`
	Price         int64     `gorm:"not null"`
	PreviousPrice *int64
	Stock         int            `gorm:"not null;default:0"`
	Category      string         `gorm:"type:varchar(50);not null;index"`
	Images        []ProductImage `gorm:"foreignKey:ProductID"`
	Ratings       []Rating       `gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(512);not null"`
	IsDisplay bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
