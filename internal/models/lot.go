package models

import "time"

// Lot is a dated batch of a product with its own quantity and expiry date.
// Many lots can belong to one product.
type Lot struct {
	LotID       string    `json:"lot_id" gorm:"primaryKey;column:lot_id;type:varchar(36)"`
	ProductID   string    `json:"product_id" gorm:"column:product_id;type:varchar(41);index"`
	LotDate     time.Time `json:"lot_date" gorm:"column:lot_date"`
	LotExp      time.Time `json:"lot_exp" gorm:"column:lot_exp"`
	LotQuantity float64   `json:"lot_quantity" gorm:"column:lot_quantity"`
}

func (Lot) TableName() string {
	return "product_lots"
}

// LotDetail merges a lot row with its owning product's display fields,
// as produced by the lot-detail join.
type LotDetail struct {
	LotID        string    `json:"lot_id"`
	ProductID    string    `json:"product_id"`
	LotDate      time.Time `json:"lot_date"`
	LotExp       time.Time `json:"lot_exp"`
	LotQuantity  float64   `json:"lot_quantity"`
	ProductName  string    `json:"product_name"`
	ProductUnit  string    `json:"product_unit"`
	ProductType  string    `json:"product_type"`
	ProductImage string    `json:"product_image"`
}
