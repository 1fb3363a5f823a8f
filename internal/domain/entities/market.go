package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Market represents a market or mall grouping merchants
type Market struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	IsMall    bool      `json:"isMall"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// MarketCreateInput represents input for creating a market
type MarketCreateInput struct {
	Name   string `json:"name" binding:"required,min=2,max=255"`
	Street string `json:"street" binding:"required,min=2,max=255"`
	City   string `json:"city" binding:"required,min=2,max=100"`
	State  string `json:"state" binding:"required,min=2,max=100"`
	IsMall bool   `json:"isMall"`
}

// MarketUpdateInput represents input for updating a market
type MarketUpdateInput struct {
	Name   string `json:"name" binding:"omitempty,min=2,max=255"`
	Street string `json:"street" binding:"omitempty,min=2,max=255"`
	City   string `json:"city" binding:"omitempty,min=2,max=100"`
	State  string `json:"state" binding:"omitempty,min=2,max=100"`
	IsMall *bool  `json:"isMall,omitempty"`
}
