package repositories

import (
	"fmt"
	"sync"

	"shrimpfarm/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ProductID]; exists {
		return fmt.Errorf("product %s already exists", product.ProductID)
	}
	r.products[product.ProductID] = *product
	return nil
}

// List returns listing rows, optionally filtered by product type.
func (r *MockProductRepository) List(productType string) ([]models.ProductSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]models.ProductSummary, 0, len(r.products))
	for _, p := range r.products {
		if productType != "" && p.ProductType != productType {
			continue
		}
		summaries = append(summaries, models.ProductSummary{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			ProductImage: p.ProductImage,
			ProductType:  p.ProductType,
		})
	}
	return summaries, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &product, nil
}
