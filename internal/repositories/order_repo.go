package repositories

import (
	"shrimpfarm/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	// GetDetail returns one flat row per line item, joining the order with the
	// purchasing employee and each item's product. ErrNotFound when the order
	// does not exist.
	GetDetail(orderID string) ([]models.OrderDetailRow, error)
	Create(order *models.Order, items []models.OrderItem) error
	// UpdateStatus sets the order's status; ErrNotFound when no row matched.
	UpdateStatus(id string, status string) error
}
