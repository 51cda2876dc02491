package services_test

import (
	"testing"
	"time"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"
	"shrimpfarm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLotService_ListAndDetail(t *testing.T) {
	repo := repositories.NewMockLotRepository()
	service := services.NewLotService(repo)

	product := models.Product{
		ProductID:    "PROD-abc",
		ProductName:  "Shrimp Feed",
		ProductType:  "feed",
		ProductUnit:  "kg",
		ProductImage: "1700000000000-feed.jpg",
	}
	repo.SeedProduct(product)

	lots := []models.Lot{
		{LotID: "lot-1", ProductID: product.ProductID, LotDate: time.Now(), LotExp: time.Now().AddDate(1, 0, 0), LotQuantity: 50},
		{LotID: "lot-2", ProductID: product.ProductID, LotDate: time.Now(), LotExp: time.Now().AddDate(1, 0, 0), LotQuantity: 70},
	}
	for i := range lots {
		require.NoError(t, repo.Create(&lots[i]))
	}

	listed, err := service.ListLotsForProduct(product.ProductID)
	assert.NoError(t, err)
	assert.Len(t, listed, 2)

	// A product with no lots yields an empty slice, not an error.
	listed, err = service.ListLotsForProduct("PROD-other")
	assert.NoError(t, err)
	assert.Empty(t, listed)

	detail, err := service.GetLotDetail("lot-1")
	assert.NoError(t, err)
	assert.Equal(t, "lot-1", detail.LotID)
	assert.Equal(t, "Shrimp Feed", detail.ProductName)
	assert.Equal(t, "kg", detail.ProductUnit)
	assert.Equal(t, "1700000000000-feed.jpg", detail.ProductImage)

	_, err = service.GetLotDetail("lot-missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestLotService_DanglingProductReference(t *testing.T) {
	repo := repositories.NewMockLotRepository()
	service := services.NewLotService(repo)

	// A lot whose product was never registered joins to nothing: the caller
	// sees the same not-found as for a missing lot.
	lot := models.Lot{LotID: "lot-orphan", ProductID: "PROD-gone", LotQuantity: 10}
	require.NoError(t, repo.Create(&lot))

	_, err := service.GetLotDetail("lot-orphan")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
