package models

type Product struct {
	ProductID string  `json:"productId" gorm:"primaryKey;column:product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unitPrice"`
}
