package repositories

import (
	"fmt"

	"shrimpfarm/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetDetail joins the order with its employee and per-item products, returning
// one row per line item.
func (r *GORMOrderRepository) GetDetail(orderID string) ([]models.OrderDetailRow, error) {
	var rows []models.OrderDetailRow
	err := r.db.Raw(`
		SELECT o.order_id, o.order_date, o.order_status,
		       e.employee_id, e.employee_fname, e.employee_lname,
		       p.product_name, p.product_image, oi.request_quantity,
		       p.product_unit AS unit_name
		FROM orders o
		JOIN employees e ON e.employee_id = o.employee_id
		JOIN order_items oi ON oi.order_id = o.order_id
		JOIN products p ON p.product_id = oi.product_id
		WHERE o.order_id = ?`, orderID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order detail %s: %w", orderID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return rows, nil
}

// Create inserts the order and its line items. Each insert is a single
// statement; there is no surrounding transaction, so a failure mid-way can
// leave a partial order behind.
func (r *GORMOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	for i := range items {
		items[i].OrderID = order.OrderID
		if err := r.db.Create(&items[i]).Error; err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}
	return nil
}

// UpdateStatus sets the status of an existing order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("order_id = ?", id).Update("order_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return nil
}
