package repositories

import (
	"globalbazaar/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// stored exactly as given; the enrichment join lives in the service layer.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByCustomer(email string) ([]models.Order, error)

	// Delete removes the order by id with no ownership check, matching the
	// upstream behavior. Idempotent.
	Delete(id string) (int64, error)
}
