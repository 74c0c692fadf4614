package dto

// CustomerValue giá trị vòng đời của khách hàng (CLV)
type CustomerValue struct {
	CustomerID string  `json:"customer_id"`
	Clv        float64 `json:"clv"`
}

// CustomerSegment phân loại khách hàng theo tổng chi tiêu
type CustomerSegment struct {
	CustomerID      string  `json:"customer_id"`
	TotalSpent      float64 `json:"total_spent"`
	CustomerSegment string  `json:"customer_segment"`
}
