package controllers

import (
	"salesapi/response"
	"salesapi/services"

	"github.com/gin-gonic/gin"
)

type RevenueController struct {
	Service *services.RevenueService
}

func NewRevenueController(service *services.RevenueService) RevenueController {
	return RevenueController{
		Service: service,
	}
}

// GetTotalRevenue tổng doanh thu trong khoảng start_date..end_date
func (ctl RevenueController) GetTotalRevenue(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	total, err := ctl.Service.GetTotalRevenue(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "total_revenue", total)
}

// GetRevenueByCategory doanh thu theo danh mục
func (ctl RevenueController) GetRevenueByCategory(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetRevenueByCategory(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "revenue_by_category", results)
}

// GetRevenueByProduct doanh thu theo sản phẩm
func (ctl RevenueController) GetRevenueByProduct(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetRevenueByProduct(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "revenue_by_product", results)
}

// GetRevenueByRegion doanh thu theo khu vực
func (ctl RevenueController) GetRevenueByRegion(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetRevenueByRegion(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "revenue_by_region", results)
}
