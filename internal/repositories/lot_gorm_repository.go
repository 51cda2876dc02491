package repositories

import (
	"errors"
	"fmt"

	"shrimpfarm/internal/models"

	"gorm.io/gorm"
)

// GORMLotRepository is a GORM implementation of LotRepository.
type GORMLotRepository struct {
	db *gorm.DB
}

// NewGORMLotRepository creates a new instance of GORMLotRepository.
func NewGORMLotRepository(db *gorm.DB) *GORMLotRepository {
	return &GORMLotRepository{
		db: db,
	}
}

// Create inserts a new lot row.
func (r *GORMLotRepository) Create(lot *models.Lot) error {
	if err := r.db.Create(lot).Error; err != nil {
		return fmt.Errorf("failed to create lot: %w", err)
	}
	return nil
}

// ListByProduct retrieves all lots for the given product.
func (r *GORMLotRepository) ListByProduct(productID string) ([]models.Lot, error) {
	var lots []models.Lot
	if err := r.db.Find(&lots, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to list lots for product %s: %w", productID, err)
	}
	return lots, nil
}

// GetDetail joins the lot with its owning product. An inner join, so a lot
// whose product row is gone surfaces as ErrNotFound just like a missing lot.
func (r *GORMLotRepository) GetDetail(lotID string) (*models.LotDetail, error) {
	var detail models.LotDetail
	err := r.db.Model(&models.Lot{}).
		Select(`product_lots.lot_id, product_lots.product_id, product_lots.lot_date,
			product_lots.lot_exp, product_lots.lot_quantity,
			products.product_name, products.product_unit, products.product_type, products.product_image`).
		Joins("JOIN products ON products.product_id = product_lots.product_id").
		Where("product_lots.lot_id = ?", lotID).
		First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lot %s: %w", lotID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get lot detail %s: %w", lotID, err)
	}
	return &detail, nil
}
