package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_product"`
	Quantity   int       `gorm:"not null"`
	TotalPrice int64     `gorm:"not null"`
	Product    *Product  `gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
