package services

import (
	"fmt"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"

	"github.com/google/uuid"
)

// CreateProductInput carries the add-product form fields plus the filename the
// upload store assigned to the submitted image.
type CreateProductInput struct {
	ProductName     string  `validate:"required,min=1,max=100"`
	ProductType     string  `validate:"required"`
	ProductUnit     string  `validate:"required"`
	ProductQuantity float64 `validate:"gte=0"`
	Threshold       float64 `validate:"gte=0"`
	StoredImage     string  `validate:"required"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct generates a fresh product identifier and inserts the row. The
// image file has already been written by the time this runs; an insert failure
// leaves the file orphaned on disk.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		ProductID:       "PROD-" + uuid.New().String(),
		ProductName:     input.ProductName,
		ProductType:     input.ProductType,
		ProductUnit:     input.ProductUnit,
		ProductQuantity: input.ProductQuantity,
		Threshold:       input.Threshold,
		ProductImage:    input.StoredImage,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product %s: %w", product.ProductID, err)
	}
	return product, nil
}

// ListProducts retrieves listing rows, optionally filtered by product type.
func (s *ProductService) ListProducts(productType string) ([]models.ProductSummary, error) {
	return s.repo.List(productType)
}

// GetProductDetail retrieves the full row for a single product.
func (s *ProductService) GetProductDetail(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}
