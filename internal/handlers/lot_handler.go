package handlers

import (
	"errors"
	"log"

	"shrimpfarm/internal/repositories"
	"shrimpfarm/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LotHandler handles HTTP requests for product lots.
type LotHandler struct {
	service *services.LotService
}

// NewLotHandler creates a new LotHandler.
func NewLotHandler(service *services.LotService) *LotHandler {
	return &LotHandler{
		service: service,
	}
}

// RegisterRoutes registers the lot routes with the Fiber app.
func (h *LotHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/product/:product_id/lots", h.HandleListLots)
	router.Get("/lot-detail/:lot_id", h.HandleGetLotDetail)
}

// HandleListLots returns all lots for a product, 404 when there are none.
func (h *LotHandler) HandleListLots(c *fiber.Ctx) error {
	productID := c.Params("product_id")

	lots, err := h.service.ListLotsForProduct(productID)
	if err != nil {
		log.Printf("Error listing lots for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch lot details",
		})
	}
	if len(lots) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No lots found for this product",
		})
	}
	return c.JSON(lots)
}

// HandleGetLotDetail returns the lot joined with its owning product. A lot
// whose product reference dangles surfaces the same as a missing lot.
func (h *LotHandler) HandleGetLotDetail(c *fiber.Ctx) error {
	lotID := c.Params("lot_id")

	detail, err := h.service.GetLotDetail(lotID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Lot not found",
			})
		}
		log.Printf("Error getting lot detail %s: %v", lotID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch lot detail",
		})
	}
	return c.JSON(detail)
}
