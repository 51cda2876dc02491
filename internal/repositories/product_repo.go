package repositories

import (
	"shrimpfarm/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	// List returns listing rows, optionally filtered by product type. A filter
	// that matches nothing yields an empty slice, not an error.
	List(productType string) ([]models.ProductSummary, error)
	GetByID(id string) (*models.Product, error)
}
