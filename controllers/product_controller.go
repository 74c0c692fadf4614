package controllers

import (
	"strconv"

	"salesapi/constants"
	"salesapi/response"
	"salesapi/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *services.RevenueService
}

func NewProductController(service *services.RevenueService) ProductController {
	return ProductController{
		Service: service,
	}
}

// Lấy tham số limit từ query, mặc định 10
func parseLimit(c *gin.Context) int {
	limit := constants.DefaultTopProductsLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return limit
}

// GetTopProductsOverall top N sản phẩm bán chạy
func (ctl ProductController) GetTopProductsOverall(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetTopProductsOverall(c.Request.Context(), start, end, parseLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "top_products", results)
}

// GetTopProductsByCategory top N sản phẩm bán chạy theo danh mục
func (ctl ProductController) GetTopProductsByCategory(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetTopProductsByCategory(c.Request.Context(), start, end, parseLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "top_products_by_category", results)
}

// GetTopProductsByRegion top N sản phẩm bán chạy theo khu vực
func (ctl ProductController) GetTopProductsByRegion(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetTopProductsByRegion(c.Request.Context(), start, end, parseLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "top_products_by_region", results)
}

// GetProfitMarginByProduct biên lợi nhuận theo sản phẩm
func (ctl ProductController) GetProfitMarginByProduct(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetProfitMarginByProduct(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "profit_margin_by_product", results)
}
