package repositories

import (
	"fmt"

	"globalbazaar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order, generating an ID when none is supplied.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByCustomer retrieves all orders placed by the given customer email.
func (r *GORMOrderRepository) GetByCustomer(email string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders, "customer_email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for %s: %w", email, err)
	}
	return orders, nil
}

// Delete removes an order by its ID. Idempotent.
func (r *GORMOrderRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete order %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
