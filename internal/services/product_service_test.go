package services_test

import (
	"fmt"
	"regexp"
	"testing"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) List(productType string) ([]models.ProductSummary, error) {
	args := m.Called(productType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSummary), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

var productIDPattern = regexp.MustCompile(`^PROD-[0-9a-f-]{36}$`)

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	input := services.CreateProductInput{
		ProductName:     "Shrimp Feed",
		ProductType:     "feed",
		ProductUnit:     "kg",
		ProductQuantity: 120,
		Threshold:       20,
		StoredImage:     "1700000000000-feed.jpg",
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(input)
	assert.NoError(t, err)
	assert.Regexp(t, productIDPattern, product.ProductID)
	assert.Equal(t, "Shrimp Feed", product.ProductName)
	assert.Equal(t, "1700000000000-feed.jpg", product.ProductImage)
	mockRepo.AssertExpectations(t)

	// Insert failure surfaces as an error, undistinguished by cause.
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("duplicate key")).Once()
	product, err = service.CreateProduct(input)
	assert.Error(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_UniqueIDs(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Times(3)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		product, err := service.CreateProduct(services.CreateProductInput{
			ProductName: "Aerator",
			ProductType: "equipment",
			ProductUnit: "unit",
			StoredImage: "1700000000000-aerator.jpg",
		})
		assert.NoError(t, err)
		assert.False(t, seen[product.ProductID], "duplicate product ID %s", product.ProductID)
		seen[product.ProductID] = true
	}
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.ProductSummary{
		{ProductID: "PROD-1", ProductName: "Shrimp Feed", ProductImage: "feed.jpg", ProductType: "feed"},
		{ProductID: "PROD-2", ProductName: "Aerator", ProductImage: "aerator.jpg", ProductType: "equipment"},
	}

	// Unfiltered listing returns everything.
	mockRepo.On("List", "").Return(expected, nil).Once()
	products, err := service.ListProducts("")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	mockRepo.AssertExpectations(t)

	// Filtered listing passes the filter straight through.
	mockRepo.On("List", "feed").Return(expected[:1], nil).Once()
	products, err = service.ListProducts("feed")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "feed", products[0].ProductType)
	mockRepo.AssertExpectations(t)

	// Zero matches is an empty slice, not an error; the handler owns the 404.
	mockRepo.On("List", "chemical").Return([]models.ProductSummary{}, nil).Once()
	products, err = service.ListProducts("chemical")
	assert.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductDetail(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{
		ProductID:       "PROD-abc",
		ProductName:     "Shrimp Feed",
		ProductType:     "feed",
		ProductUnit:     "kg",
		ProductQuantity: 120,
		Threshold:       20,
		ProductImage:    "1700000000000-feed.jpg",
	}

	mockRepo.On("GetByID", "PROD-abc").Return(expected, nil).Once()
	product, err := service.GetProductDetail("PROD-abc")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "PROD-missing").Return(nil, fmt.Errorf("product PROD-missing: record not found")).Once()
	product, err = service.GetProductDetail("PROD-missing")
	assert.Error(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}
