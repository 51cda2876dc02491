package repositories

import (
	"fmt"
	"sync"

	"shrimpfarm/internal/models"
)

// MockLotRepository is an in-memory implementation of LotRepository. It keeps
// its own product map so the detail join can be simulated without a database.
type MockLotRepository struct {
	lots     map[string]models.Lot
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockLotRepository creates a new instance of MockLotRepository.
func NewMockLotRepository() *MockLotRepository {
	return &MockLotRepository{
		lots:     make(map[string]models.Lot),
		products: make(map[string]models.Product),
	}
}

// SeedProduct registers a product so lot-detail joins can resolve against it.
func (r *MockLotRepository) SeedProduct(product models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ProductID] = product
}

// Create adds a new lot.
func (r *MockLotRepository) Create(lot *models.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lots[lot.LotID]; exists {
		return fmt.Errorf("lot %s already exists", lot.LotID)
	}
	r.lots[lot.LotID] = *lot
	return nil
}

// ListByProduct returns all lots for the given product.
func (r *MockLotRepository) ListByProduct(productID string) ([]models.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]models.Lot, 0)
	for _, l := range r.lots {
		if l.ProductID == productID {
			lots = append(lots, l)
		}
	}
	return lots, nil
}

// GetDetail joins the lot with its product; a dangling product reference is
// indistinguishable from a missing lot, matching the SQL inner join.
func (r *MockLotRepository) GetDetail(lotID string) (*models.LotDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return nil, fmt.Errorf("lot %s: %w", lotID, ErrNotFound)
	}
	product, ok := r.products[lot.ProductID]
	if !ok {
		return nil, fmt.Errorf("lot %s: %w", lotID, ErrNotFound)
	}
	return &models.LotDetail{
		LotID:        lot.LotID,
		ProductID:    lot.ProductID,
		LotDate:      lot.LotDate,
		LotExp:       lot.LotExp,
		LotQuantity:  lot.LotQuantity,
		ProductName:  product.ProductName,
		ProductUnit:  product.ProductUnit,
		ProductType:  product.ProductType,
		ProductImage: product.ProductImage,
	}, nil
}
