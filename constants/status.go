package constants

// Refresh status
const (
	RefreshStatusSuccess = "success"
	RefreshStatusError   = "error"
)

// Customer segment
const (
	SegmentHigh   = "High"
	SegmentMedium = "Medium"
	SegmentLow    = "Low"
)

// Ngưỡng tổng chi tiêu để phân loại khách hàng
const (
	SegmentHighThreshold   = 1000.0
	SegmentMediumThreshold = 500.0
)

const (
	DefaultTopProductsLimit = 10
	DefaultLoaderWorkers    = 4
)
