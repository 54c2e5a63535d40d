package repositories

import (
	"errors"
	"fmt"

	"globalbazaar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product, generating an ID when none is supplied.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetAll retrieves all products.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByCategory retrieves all products in the given category.
func (r *GORMProductRepository) GetByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "category = ?", category).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by category %s: %w", category, err)
	}
	return products, nil
}

// GetByOwner retrieves all products owned by the given email.
func (r *GORMProductRepository) GetByOwner(email string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by owner %s: %w", email, err)
	}
	return products, nil
}

// GetByMinSellingQuantityOver retrieves products whose minimum selling
// quantity exceeds the threshold. Quantities are normalized to integers at
// the boundary, so this is a plain comparison rather than the string cast
// the upstream data needed.
func (r *GORMProductRepository) GetByMinSellingQuantityOver(threshold int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "min_selling_quantity > ?", threshold).Error; err != nil {
		return nil, fmt.Errorf("failed to filter products by min selling quantity: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// UpdateFields applies the given column values to the product.
func (r *GORMProductRepository) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to look up product %s: %w", id, err)
	}
	if count == 0 {
		return 0, ErrNotFound
	}
	if len(fields) == 0 {
		return 0, nil
	}

	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a product by its ID. Deleting a missing product is not an
// error; the count reports whether a row was removed.
func (r *GORMProductRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// DecrementQuantity performs the sale-side stock adjustment as a single
// conditional update. Two concurrent sales cannot both pass the guard: the
// quantity >= ? predicate and the subtraction are one statement.
func (r *GORMProductRepository) DecrementQuantity(id string, sellQuantity int) (int, error) {
	if sellQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	res := r.db.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, sellQuantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", sellQuantity))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to decrement quantity for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the product does not exist or the guard failed.
		var count int64
		if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, fmt.Errorf("failed to look up product %s: %w", id, err)
		}
		if count == 0 {
			return 0, ErrNotFound
		}
		return 0, ErrInsufficientStock
	}

	return r.currentQuantity(id)
}

// IncrementQuantity performs the restock-side stock adjustment. Unlike the
// sale path there is no stock precondition.
func (r *GORMProductRepository) IncrementQuantity(id string, addQuantity int) (int, error) {
	if addQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	res := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", addQuantity))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to increment quantity for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	return r.currentQuantity(id)
}

func (r *GORMProductRepository) currentQuantity(id string) (int, error) {
	var product models.Product
	if err := r.db.Select("quantity").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to read quantity for product %s: %w", id, err)
	}
	return product.Quantity.Int(), nil
}
