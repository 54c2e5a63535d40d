package repositories

import (
	"globalbazaar/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// DecrementQuantity and IncrementQuantity must be atomic with respect to
// concurrent adjustments on the same product: the decrement guard and the
// write happen as one conditional update, never as a separate fetch and
// set.
type ProductRepository interface {
	Create(product *models.Product) error
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	GetByOwner(email string) ([]models.Product, error)
	GetByMinSellingQuantityOver(threshold int) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)

	// UpdateFields applies the given column values to the product and
	// returns the number of rows changed. ErrNotFound when the id does not
	// match any record.
	UpdateFields(id string, fields map[string]interface{}) (int64, error)

	// Delete removes the product. Idempotent: deleting a missing id is not
	// an error; the returned count tells callers whether anything went.
	Delete(id string) (int64, error)

	// DecrementQuantity subtracts sellQuantity from the product's stock if
	// and only if enough stock is available, and returns the new quantity.
	// ErrInsufficientStock when the guard fails, ErrNotFound when the id is
	// unknown.
	DecrementQuantity(id string, sellQuantity int) (int, error)

	// IncrementQuantity adds addQuantity to the product's stock and returns
	// the new quantity. A restock has no stock precondition.
	IncrementQuantity(id string, addQuantity int) (int, error)
}
