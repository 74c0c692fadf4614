package dto

// RefreshStatusResponse kết quả lần refresh gần nhất
type RefreshStatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
