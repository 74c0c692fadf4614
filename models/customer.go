package models

type Customer struct {
	CustomerID string `json:"customerId" gorm:"primaryKey;column:customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}
