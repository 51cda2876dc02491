package handlers

import (
	"errors"
	"log"
	"strings"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"
	"shrimpfarm/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOrders)
	router.Get("/orders/:order_id", h.HandleGetOrderDetail)
	router.Post("/orders", h.HandleCreateOrder)
	router.Put("/update-order-status/:order_id", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve orders",
		})
	}
	if len(orders) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No orders found",
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderDetail returns the joined detail rows for one order, one row
// per line item, the shape the order-detail page consumes.
func (h *OrderHandler) HandleGetOrderDetail(c *fiber.Ctx) error {
	orderID := c.Params("order_id")

	rows, err := h.service.GetOrderDetail(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order detail %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch order detail",
		})
	}
	return c.JSON(rows)
}

// HandleCreateOrder creates a new order in the waiting state.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req struct {
		EmployeeID string             `json:"employee_id"`
		Items      []models.OrderItem `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-order body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.EmployeeID == "" || len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "employee_id and at least one item are required",
		})
	}

	order, err := h.service.CreateOrder(req.EmployeeID, req.Items)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create order",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": order.OrderID,
	})
}

// HandleUpdateOrderStatus moves an order between waiting/accept/reject.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status-update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := h.service.UpdateOrderStatus(orderID, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update order status",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
	})
}
