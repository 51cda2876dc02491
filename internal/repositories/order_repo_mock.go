package repositories

import (
	"fmt"
	"sync"

	"shrimpfarm/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository. Like
// the lot mock, it holds its own employee and product maps so the detail join
// can be simulated.
type MockOrderRepository struct {
	orders    map[string]models.Order
	items     map[string][]models.OrderItem
	employees map[string]models.Employee
	products  map[string]models.Product
	mu        sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders:    make(map[string]models.Order),
		items:     make(map[string][]models.OrderItem),
		employees: make(map[string]models.Employee),
		products:  make(map[string]models.Product),
	}
}

// SeedEmployee registers an employee for detail joins.
func (r *MockOrderRepository) SeedEmployee(employee models.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[employee.EmployeeID] = employee
}

// SeedProduct registers a product for detail joins.
func (r *MockOrderRepository) SeedProduct(product models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ProductID] = product
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

// GetDetail returns one joined row per line item.
func (r *MockOrderRepository) GetDetail(orderID string) ([]models.OrderDetailRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	employee := r.employees[order.EmployeeID]

	rows := make([]models.OrderDetailRow, 0, len(r.items[orderID]))
	for _, item := range r.items[orderID] {
		product, ok := r.products[item.ProductID]
		if !ok {
			continue
		}
		rows = append(rows, models.OrderDetailRow{
			OrderID:         order.OrderID,
			OrderDate:       order.OrderDate,
			OrderStatus:     order.OrderStatus,
			EmployeeID:      employee.EmployeeID,
			EmployeeFname:   employee.EmployeeFname,
			EmployeeLname:   employee.EmployeeLname,
			ProductName:     product.ProductName,
			ProductImage:    product.ProductImage,
			RequestQuantity: item.RequestQuantity,
			UnitName:        product.ProductUnit,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return rows, nil
}

// Create adds an order with its line items.
func (r *MockOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderID]; exists {
		return fmt.Errorf("order %s already exists", order.OrderID)
	}
	r.orders[order.OrderID] = *order
	stored := make([]models.OrderItem, len(items))
	copy(stored, items)
	for i := range stored {
		stored[i].OrderID = order.OrderID
	}
	r.items[order.OrderID] = stored
	return nil
}

// UpdateStatus sets the status of an existing order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	order.OrderStatus = status
	r.orders[id] = order
	return nil
}
