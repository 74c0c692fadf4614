package dto

// TopProduct sản phẩm bán chạy theo số lượng
type TopProduct struct {
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// TopProductByCategory sản phẩm bán chạy trong từng danh mục
type TopProductByCategory struct {
	Category     string `json:"category"`
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// TopProductByRegion sản phẩm bán chạy trong từng khu vực
type TopProductByRegion struct {
	Region       string `json:"region"`
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// ProductProfitMargin biên lợi nhuận theo sản phẩm
type ProductProfitMargin struct {
	ProductName  string  `json:"product_name"`
	Revenue      float64 `json:"revenue"`
	TotalSales   float64 `json:"total_sales"`
	ProfitMargin float64 `json:"profit_margin"`
}
