package entities

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents one product line in a customer's cart.
// TotalPrice is derived as Quantity * Product.Price at update time.
type CartItem struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	ProductID  uuid.UUID `json:"productId"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"totalPrice"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CartUpdateInput represents input for upserting a cart line.
// Quantity 0 removes the line.
type CartUpdateInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"gte=0"`
}
