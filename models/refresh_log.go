package models

import (
	"time"
)

// RefreshLog ghi lại kết quả của một lần nạp dữ liệu CSV
type RefreshLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
