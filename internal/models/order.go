package models

import "time"

// Order statuses understood by the status-transition endpoint. Comparison is
// case-insensitive; the stored value is whatever the caller sent.
const (
	OrderStatusWaiting = "waiting"
	OrderStatusAccept  = "accept"
	OrderStatusReject  = "reject"
)

// Order is a purchase request raised by an employee.
type Order struct {
	OrderID     string    `json:"order_id" gorm:"primaryKey;column:order_id;type:varchar(36)"`
	OrderDate   time.Time `json:"order_date" gorm:"column:order_date"`
	OrderStatus string    `json:"order_status" gorm:"column:order_status;type:varchar(20)"`
	EmployeeID  string    `json:"employee_id" gorm:"column:employee_id;type:varchar(36);index"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	ID              uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         string  `json:"order_id" gorm:"column:order_id;type:varchar(36);index"`
	ProductID       string  `json:"product_id" gorm:"column:product_id;type:varchar(41)"`
	RequestQuantity float64 `json:"request_quantity" gorm:"column:request_quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderDetailRow is one row of the order-detail join: the order and purchaser
// fields repeated per line item, plus that item's product display fields. The
// detail endpoint returns one row per item, mirroring the flat SQL result.
type OrderDetailRow struct {
	OrderID         string    `json:"order_id"`
	OrderDate       time.Time `json:"order_date"`
	OrderStatus     string    `json:"order_status"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeFname   string    `json:"employee_fname"`
	EmployeeLname   string    `json:"employee_lname"`
	ProductName     string    `json:"product_name"`
	ProductImage    string    `json:"product_image"`
	RequestQuantity float64   `json:"request_quantity"`
	UnitName        string    `json:"unit_name"`
}
