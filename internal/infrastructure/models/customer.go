package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Phone1          string    `gorm:"type:varchar(20);not null"`
	Phone2          *string   `gorm:"type:varchar(20)"`
	MarketerID      *uuid.UUID
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
