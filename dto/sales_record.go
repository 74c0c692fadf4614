package dto

import (
	"time"
)

// SalesRecord một dòng dữ liệu bán hàng đã parse từ file CSV
type SalesRecord struct {
	OrderID         string
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	ProductID       string
	ProductName     string
	Category        string
	UnitPrice       float64
	QuantitySold    int
	Discount        float64
	DateOfSale      time.Time
	Region          string
}
