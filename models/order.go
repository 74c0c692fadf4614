package models

import (
	"time"
)

type Order struct {
	OrderID    string    `json:"orderId" gorm:"primaryKey;column:order_id"`
	CustomerID string    `json:"customerId" gorm:"column:customer_id"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:CustomerID"`
	DateOfSale time.Time `json:"dateOfSale" gorm:"column:date_of_sale"`
	Region     string    `json:"region"`
}
