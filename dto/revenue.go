package dto

// CategoryRevenue doanh thu theo danh mục sản phẩm
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// ProductRevenue doanh thu theo sản phẩm
type ProductRevenue struct {
	ProductName string  `json:"product_name"`
	Revenue     float64 `json:"revenue"`
}

// RegionRevenue doanh thu theo khu vực
type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}
