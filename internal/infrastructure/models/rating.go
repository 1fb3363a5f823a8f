package models

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_customer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_customer_product"`
	Stars      int       `gorm:"not null"`
	Review     *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
