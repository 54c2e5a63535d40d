package models

import "time"

// Product is a marketplace listing. The wire field names (including the
// Mongo-style "_id") are kept from the original API so existing frontends
// keep working. Quantity never goes negative at rest.
type Product struct {
	ID                 string    `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name               string    `json:"name" validate:"required,min=1,max=200"`
	Category           string    `json:"category" validate:"omitempty,max=100"`
	Brand              string    `json:"brand" validate:"omitempty,max=100"`
	Price              float64   `json:"price" validate:"gte=0"`
	Quantity           FlexInt   `json:"quantity" validate:"gte=0"`
	MinSellingQuantity FlexInt   `json:"minSellingQuantity" validate:"gte=0"`
	ImageURL           string    `json:"imageUrl" validate:"omitempty,max=2048"`
	Email              string    `json:"email" gorm:"index" validate:"omitempty,email"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
