package services_test

import (
	"testing"

	"globalbazaar/internal/models"
	"globalbazaar/internal/repositories"
	"globalbazaar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByOwner(email string) ([]models.Product, error) {
	args := m.Called(email)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByMinSellingQuantityOver(threshold int) ([]models.Product, error) {
	args := m.Called(threshold)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	args := m.Called(id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DecrementQuantity(id string, sellQuantity int) (int, error) {
	args := m.Called(id, sellQuantity)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) IncrementQuantity(id string, addQuantity int) (int, error) {
	args := m.Called(id, addQuantity)
	return args.Int(0), args.Error(1)
}

func ownedProduct() *models.Product {
	return &models.Product{
		ID:       "prod-1",
		Name:     "Ceramic Mug",
		Category: "Home & Garden",
		Brand:    "Claylab",
		Price:    12.5,
		Quantity: 50,
		Email:    "seller@example.com",
	}
}

func TestProductService_CreateProduct_DefaultsOwner(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{Name: "Ceramic Mug"}
	mockRepo.On("Create", product).Return(nil).Once()

	err := service.CreateProduct(product, "seller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "seller@example.com", product.Email)
	mockRepo.AssertExpectations(t)

	// An explicit owner in the payload wins over the principal.
	product = &models.Product{Name: "Ceramic Mug", Email: "other@example.com"}
	mockRepo.On("Create", product).Return(nil).Once()
	err = service.CreateProduct(product, "seller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "other@example.com", product.Email)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListOwnedProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{*ownedProduct()}
	mockRepo.On("GetByOwner", "seller@example.com").Return(expected, nil).Once()

	products, err := service.ListOwnedProducts("seller@example.com", "seller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)

	// Principal mismatch fails before any repository call.
	products, err = service.ListOwnedProducts("seller@example.com", "attacker@example.com")
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Nil(t, products)
	mockRepo.AssertNotCalled(t, "GetByOwner", "attacker@example.com")
}

func TestProductService_DecrementForSale(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("DecrementQuantity", "prod-1", 30).Return(20, nil).Once()
	quantity, err := service.DecrementForSale("prod-1", 30)
	assert.NoError(t, err)
	assert.Equal(t, 20, quantity)

	mockRepo.On("DecrementQuantity", "prod-1", 30).Return(0, repositories.ErrInsufficientStock).Once()
	_, err = service.DecrementForSale("prod-1", 30)
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	mockRepo.On("DecrementQuantity", "missing", 1).Return(0, repositories.ErrNotFound).Once()
	_, err = service.DecrementForSale("missing", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_IncrementForRestock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// A restock bigger than the current stock goes through; there is no
	// stock precondition on the restock side.
	mockRepo.On("IncrementQuantity", "prod-1", 500).Return(520, nil).Once()
	quantity, err := service.IncrementForRestock("prod-1", 500)
	assert.NoError(t, err)
	assert.Equal(t, 520, quantity)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Not found.
	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()
	_, err := service.UpdateProduct("missing", "seller@example.com", map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Wrong owner.
	mockRepo.On("GetByID", "prod-1").Return(ownedProduct(), nil).Once()
	_, err = service.UpdateProduct("prod-1", "attacker@example.com", map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Same values: no storage write, zero modified.
	mockRepo.On("GetByID", "prod-1").Return(ownedProduct(), nil).Once()
	modified, err := service.UpdateProduct("prod-1", "seller@example.com", map[string]interface{}{
		"name":  "Ceramic Mug",
		"price": 12.5,
	})
	assert.NoError(t, err)
	assert.Zero(t, modified)
	mockRepo.AssertNotCalled(t, "UpdateFields", "prod-1", mock.Anything)

	// Unknown keys are dropped, known ones normalized to columns; a string
	// quantity is coerced to an integer.
	mockRepo.On("GetByID", "prod-1").Return(ownedProduct(), nil).Once()
	mockRepo.On("UpdateFields", "prod-1", map[string]interface{}{
		"name":     "Stoneware Mug",
		"quantity": 75,
	}).Return(int64(1), nil).Once()
	modified, err = service.UpdateProduct("prod-1", "seller@example.com", map[string]interface{}{
		"name":     "Stoneware Mug",
		"quantity": "75",
		"_id":      "should-be-ignored",
		"bogus":    true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), modified)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_RejectsBadQuantity(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	for _, quantity := range []interface{}{"plenty", -3.0, 1.5} {
		mockRepo.On("GetByID", "prod-1").Return(ownedProduct(), nil).Once()
		_, err := service.UpdateProduct("prod-1", "seller@example.com", map[string]interface{}{
			"quantity": quantity,
		})
		assert.ErrorIs(t, err, repositories.ErrInvalidQuantity, "quantity %v", quantity)
	}
	mockRepo.AssertNotCalled(t, "UpdateFields", "prod-1", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Deleting a product that is already gone succeeds with a zero count.
	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()
	deleted, err := service.DeleteProduct("missing", "seller@example.com")
	assert.NoError(t, err)
	assert.Zero(t, deleted)
	mockRepo.AssertNotCalled(t, "Delete", "missing")

	// Wrong owner.
	mockRepo.On("GetByID", "prod-1").Return(ownedProduct(), nil).Once()
	_, err = service.DeleteProduct("prod-1", "attacker@example.com")
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Owner delete.
	mockRepo.On("GetByID", "prod-1").Return(ownedProduct(), nil).Once()
	mockRepo.On("Delete", "prod-1").Return(int64(1), nil).Once()
	deleted, err = service.DeleteProduct("prod-1", "seller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	mockRepo.AssertExpectations(t)
}
