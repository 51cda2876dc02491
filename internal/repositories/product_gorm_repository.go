package repositories

import (
	"errors"
	"fmt"

	"shrimpfarm/internal/models"

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

// Create inserts a new product row. The caller is responsible for having set
// the product ID; duplicate keys and connection failures surface the same way.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// List retrieves listing rows, filtered by product type when one is given.
// No ordering is imposed; rows come back however the store returns them.
func (r *GORMProductRepository) List(productType string) ([]models.ProductSummary, error) {
	var summaries []models.ProductSummary
	q := r.db.Model(&models.Product{}).
		Select("product_id, product_name, product_image, product_type")
	if productType != "" {
		q = q.Where("product_type = ?", productType)
	}
	if err := q.Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return summaries, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}
