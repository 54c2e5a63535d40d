package repositories

import (
	"sync"

	"globalbazaar/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It backs the server when no database is configured
// and gives tests the same adjustment semantics as the GORM store: the
// stock guard and the write happen under one lock.
type MemoryProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product, generating an ID when none is supplied.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// GetAll returns all products.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, nil
}

// GetByCategory returns all products in the given category.
func (r *MemoryProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Product
	for _, p := range r.products {
		if p.Category == category {
			list = append(list, p)
		}
	}
	return list, nil
}

// GetByOwner returns all products owned by the given email.
func (r *MemoryProductRepository) GetByOwner(email string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Product
	for _, p := range r.products {
		if p.Email == email {
			list = append(list, p)
		}
	}
	return list, nil
}

// GetByMinSellingQuantityOver returns products whose minimum selling
// quantity exceeds the threshold.
func (r *MemoryProductRepository) GetByMinSellingQuantityOver(threshold int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []models.Product
	for _, p := range r.products {
		if p.MinSellingQuantity.Int() > threshold {
			list = append(list, p)
		}
	}
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// UpdateFields applies the given column values to the product. Only the
// columns the GORM store knows are recognized; anything else was already
// dropped by the service layer.
func (r *MemoryProductRepository) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, ErrNotFound
	}
	if len(fields) == 0 {
		return 0, nil
	}

	for column, value := range fields {
		switch column {
		case "name":
			product.Name, _ = value.(string)
		case "category":
			product.Category, _ = value.(string)
		case "brand":
			product.Brand, _ = value.(string)
		case "price":
			product.Price, _ = value.(float64)
		case "quantity":
			if n, ok := value.(int); ok {
				product.Quantity = models.FlexInt(n)
			}
		case "min_selling_quantity":
			if n, ok := value.(int); ok {
				product.MinSellingQuantity = models.FlexInt(n)
			}
		case "image_url":
			product.ImageURL, _ = value.(string)
		case "email":
			product.Email, _ = value.(string)
		}
	}
	r.products[id] = product
	return 1, nil
}

// Delete removes a product by its ID. Idempotent.
func (r *MemoryProductRepository) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

// DecrementQuantity applies the sale-side adjustment. Guard and write are
// both under the write lock, so concurrent sales cannot oversell.
func (r *MemoryProductRepository) DecrementQuantity(id string, sellQuantity int) (int, error) {
	if sellQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, ErrNotFound
	}
	if product.Quantity.Int() < sellQuantity {
		return 0, ErrInsufficientStock
	}
	product.Quantity -= models.FlexInt(sellQuantity)
	r.products[id] = product
	return product.Quantity.Int(), nil
}

// IncrementQuantity applies the restock-side adjustment. No stock
// precondition.
func (r *MemoryProductRepository) IncrementQuantity(id string, addQuantity int) (int, error) {
	if addQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, ErrNotFound
	}
	product.Quantity += models.FlexInt(addQuantity)
	r.products[id] = product
	return product.Quantity.Int(), nil
}
