package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"globalbazaar/internal/models"
	"globalbazaar/internal/repositories"
)

// ProductService handles business logic related to products, including
// the stock adjustments behind the quantity endpoints.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct creates a new product. The authenticated principal becomes
// the owner when the payload does not name one.
func (s *ProductService) CreateProduct(product *models.Product, principal string) error {
	if product.Email == "" {
		product.Email = principal
	}
	return s.repo.Create(product)
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsByCategory retrieves all products in the given category.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// ListOwnedProducts retrieves the products owned by email. The principal
// must match the requested owner.
func (s *ProductService) ListOwnedProducts(email, principal string) ([]models.Product, error) {
	if email != principal {
		return nil, ErrForbidden
	}
	return s.repo.GetByOwner(email)
}

// FilterByMinSellingQuantity retrieves products whose minimum selling
// quantity exceeds the threshold.
func (s *ProductService) FilterByMinSellingQuantity(threshold int) ([]models.Product, error) {
	return s.repo.GetByMinSellingQuantityOver(threshold)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// UpdateProduct merges the given fields into the product and returns the
// number of records actually changed, so callers can tell an update from a
// no-op. Unknown keys are dropped silently; the principal must own the
// product.
func (s *ProductService) UpdateProduct(id, principal string, fields map[string]interface{}) (int64, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if existing.Email != principal {
		return 0, ErrForbidden
	}

	columns, err := normalizeProductFields(fields)
	if err != nil {
		return 0, err
	}
	dropUnchanged(columns, existing)
	if len(columns) == 0 {
		return 0, nil
	}

	return s.repo.UpdateFields(id, columns)
}

// DeleteProduct removes a product owned by the principal. Deleting a
// product that is already gone succeeds with a zero count.
func (s *ProductService) DeleteProduct(id, principal string) (int64, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if existing.Email != principal {
		return 0, ErrForbidden
	}
	return s.repo.Delete(id)
}

// DecrementForSale subtracts sellQuantity from the product's stock. Fails
// with ErrInsufficientStock, leaving the stock untouched, when not enough
// is available. Returns the quantity after the sale.
func (s *ProductService) DecrementForSale(id string, sellQuantity int) (int, error) {
	return s.repo.DecrementQuantity(id, sellQuantity)
}

// IncrementForRestock adds addQuantity to the product's stock and returns
// the new quantity. A restock is never blocked by the current stock level;
// only the delta itself is validated.
func (s *ProductService) IncrementForRestock(id string, addQuantity int) (int, error) {
	return s.repo.IncrementQuantity(id, addQuantity)
}

// updatableColumns maps accepted payload keys to their storage columns.
var updatableColumns = map[string]string{
	"name":               "name",
	"category":           "category",
	"brand":              "brand",
	"price":              "price",
	"quantity":           "quantity",
	"minSellingQuantity": "min_selling_quantity",
	"imageUrl":           "image_url",
	"email":              "email",
}

// normalizeProductFields whitelists payload keys and coerces values to
// their storage types. Quantity-like fields accept numbers or numeric
// strings and must not be negative.
func normalizeProductFields(fields map[string]interface{}) (map[string]interface{}, error) {
	columns := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		column, ok := updatableColumns[key]
		if !ok {
			continue
		}
		switch key {
		case "quantity", "minSellingQuantity":
			n, err := coerceInt(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: %s", repositories.ErrInvalidQuantity, key)
			}
			columns[column] = n
		case "price":
			f, err := coerceFloat(value)
			if err != nil || f < 0 {
				return nil, fmt.Errorf("%w: price", repositories.ErrInvalidQuantity)
			}
			columns[column] = f
		default:
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string", repositories.ErrInvalidQuantity, key)
			}
			columns[column] = s
		}
	}
	return columns, nil
}

// dropUnchanged removes columns whose value already matches the stored
// product, so a same-value update reports zero records changed.
func dropUnchanged(columns map[string]interface{}, existing *models.Product) {
	for column, value := range columns {
		var same bool
		switch column {
		case "name":
			same = value == existing.Name
		case "category":
			same = value == existing.Category
		case "brand":
			same = value == existing.Brand
		case "price":
			same = value == existing.Price
		case "quantity":
			same = value == existing.Quantity.Int()
		case "min_selling_quantity":
			same = value == existing.MinSellingQuantity.Int()
		case "image_url":
			same = value == existing.ImageURL
		case "email":
			same = value == existing.Email
		}
		if same {
			delete(columns, column)
		}
	}
}

func coerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		return int(v), nil
	case int:
		return v, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("not numeric: %v", value)
	}
}

func coerceFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("not numeric: %v", value)
	}
}
