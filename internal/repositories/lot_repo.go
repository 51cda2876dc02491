package repositories

import (
	"shrimpfarm/internal/models"
)

// LotRepository defines the interface for product-lot data access.
type LotRepository interface {
	Create(lot *models.Lot) error
	// ListByProduct returns all lots belonging to a product; zero lots yields
	// an empty slice, not an error.
	ListByProduct(productID string) ([]models.Lot, error)
	// GetDetail returns the lot joined with its owning product's display
	// fields. A missing lot and a lot whose product reference is dangling are
	// both reported as ErrNotFound; the join cannot tell them apart.
	GetDetail(lotID string) (*models.LotDetail, error)
}
