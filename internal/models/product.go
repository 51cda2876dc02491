package models

// Product is a catalog item tracked with an aggregate quantity and a reorder
// threshold. The image field holds the stored filename only; clients resolve it
// against the /product static mount.
type Product struct {
	ProductID       string  `json:"product_id" gorm:"primaryKey;column:product_id;type:varchar(41)"`
	ProductName     string  `json:"product_name" gorm:"column:product_name;type:varchar(100)" validate:"required,min=1,max=100"`
	ProductType     string  `json:"product_type" gorm:"column:product_type;type:varchar(50)" validate:"required"`
	ProductUnit     string  `json:"product_unit" gorm:"column:product_unit;type:varchar(50)" validate:"required"`
	ProductQuantity float64 `json:"product_quantity" gorm:"column:product_quantity" validate:"gte=0"`
	Threshold       float64 `json:"threshold" gorm:"column:threshold" validate:"gte=0"`
	ProductImage    string  `json:"product_image" gorm:"column:product_image;type:varchar(255)"`
}

// TableName overrides GORM's pluralization to match the existing schema.
func (Product) TableName() string {
	return "products"
}

// ProductSummary is the row shape returned by the product listing endpoint.
type ProductSummary struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	ProductType  string `json:"product_type"`
}
