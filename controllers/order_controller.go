package controllers

import (
	"salesapi/response"
	"salesapi/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.RevenueService
}

func NewOrderController(service *services.RevenueService) OrderController {
	return OrderController{
		Service: service,
	}
}

// GetTotalOrders số đơn hàng trong khoảng ngày
func (ctl OrderController) GetTotalOrders(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	total, err := ctl.Service.GetTotalOrders(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "total_orders", total)
}

// GetAverageOrderValue giá trị trung bình của một đơn hàng
func (ctl OrderController) GetAverageOrderValue(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	avg, err := ctl.Service.GetAverageOrderValue(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "average_order_value", avg)
}
