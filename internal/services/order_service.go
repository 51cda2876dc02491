package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"

	"github.com/google/uuid"
)

// StatusPublisher publishes order status-change events. Satisfied by
// *rabbitmq.Client; mocked in tests.
type StatusPublisher interface {
	PublishStatusChanged(orderID, status string) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher StatusPublisher
}

// NewOrderService creates a new OrderService. The publisher may be nil, in
// which case status-change events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, publisher StatusPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderDetail retrieves the joined order-detail rows, one per line item.
func (s *OrderService) GetOrderDetail(orderID string) ([]models.OrderDetailRow, error) {
	return s.orderRepo.GetDetail(orderID)
}

// CreateOrder creates a new order in the "waiting" state.
func (s *OrderService) CreateOrder(employeeID string, items []models.OrderItem) (*models.Order, error) {
	if employeeID == "" || len(items) == 0 {
		return nil, fmt.Errorf("employee ID and at least one item are required")
	}

	order := &models.Order{
		OrderID:     uuid.New().String(),
		OrderDate:   time.Now(),
		OrderStatus: models.OrderStatusWaiting,
		EmployeeID:  employeeID,
	}
	if err := s.orderRepo.Create(order, items); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// UpdateOrderStatus sets the status of an existing order. Status names are
// compared case-insensitively; the caller's spelling is what gets stored. A
// status-change event is published best effort and never fails the update.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderStatusWaiting: true,
		models.OrderStatusAccept:  true,
		models.OrderStatusReject:  true,
	}
	if !validStatuses[strings.ToLower(status)] {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStatusChanged(id, status); err != nil {
			log.Printf("Warning: failed to publish status event for order %s: %v", id, err)
		}
	}
	return nil
}
