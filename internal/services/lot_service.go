package services

import (
	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"
)

// LotService handles business logic related to product lots.
type LotService struct {
	repo repositories.LotRepository
}

// NewLotService creates a new LotService.
func NewLotService(repo repositories.LotRepository) *LotService {
	return &LotService{
		repo: repo,
	}
}

// ListLotsForProduct retrieves all lots belonging to a product.
func (s *LotService) ListLotsForProduct(productID string) ([]models.Lot, error) {
	return s.repo.ListByProduct(productID)
}

// GetLotDetail retrieves a lot joined with its owning product's display fields.
func (s *LotService) GetLotDetail(lotID string) (*models.LotDetail, error) {
	return s.repo.GetDetail(lotID)
}
