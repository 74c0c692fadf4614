package models

type OrderItem struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	OrderID      string   `json:"orderId" gorm:"column:order_id"`
	Order        *Order   `json:"order,omitempty" gorm:"foreignKey:OrderID;references:OrderID"`
	ProductID    string   `json:"productId" gorm:"column:product_id"`
	Product      *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ProductID"`
	QuantitySold int      `json:"quantitySold"`
	UnitPrice    float64  `json:"unitPrice"`
	Discount     float64  `json:"discount"` // tỷ lệ giảm giá trong khoảng [0,1]
}
