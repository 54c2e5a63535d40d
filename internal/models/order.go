package models

import "time"

// Order is a stored purchase record. ProductID keeps the upstream JSON
// name "orderId", which actually references the product being bought.
// Creating an order does not touch product stock; the quantity adjustment
// endpoint is a separate call.
type Order struct {
	ID            string    `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CustomerEmail string    `json:"customerEmail" gorm:"index" validate:"required,email"`
	ProductID     string    `json:"orderId" validate:"required"`
	SellQuantity  FlexInt   `json:"sellQuantity" validate:"gte=0"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EnrichedOrder is the read-time view of an order with fields copied from
// the referenced product. It is computed per read and never persisted.
// ProductMissing is set when the referenced product has been deleted.
type EnrichedOrder struct {
	Order
	Name           string  `json:"name,omitempty"`
	Photo          string  `json:"photo,omitempty"`
	Brand          string  `json:"brand,omitempty"`
	Category       string  `json:"category,omitempty"`
	Price          float64 `json:"price,omitempty"`
	ProductMissing bool    `json:"productMissing,omitempty"`
}
