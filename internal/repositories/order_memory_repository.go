package repositories

import (
	"sync"
	"time"

	"globalbazaar/internal/models"

	"github.com/google/uuid"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}

// GetByCustomer returns all orders placed by the given customer email.
func (r *MemoryOrderRepository) GetByCustomer(email string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Order
	for _, o := range r.orders {
		if o.CustomerEmail == email {
			list = append(list, o)
		}
	}
	return list, nil
}

// Delete removes an order by its ID. Idempotent.
func (r *MemoryOrderRepository) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return 0, nil
	}
	delete(r.orders, id)
	return 1, nil
}
