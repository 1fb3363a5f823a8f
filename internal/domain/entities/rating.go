package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Rating represents a customer's rating of a product, one per
// (customer, product) pair.
type Rating struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customerId"`
	ProductID  uuid.UUID   `json:"productId"`
	Stars      int         `json:"stars"`
	Review     null.String `json:"review,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// RatingInput represents input for creating or updating a rating
type RatingInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Stars     int       `json:"stars" binding:"required,min=1,max=5"`
	Review    string    `json:"review" binding:"omitempty,max=2000"`
}
