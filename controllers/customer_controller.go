package controllers

import (
	"salesapi/response"
	"salesapi/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Service *services.RevenueService
}

func NewCustomerController(service *services.RevenueService) CustomerController {
	return CustomerController{
		Service: service,
	}
}

// GetTotalCustomers số khách hàng có đơn trong khoảng ngày
func (ctl CustomerController) GetTotalCustomers(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	total, err := ctl.Service.GetTotalCustomers(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "total_customers", total)
}

// GetCustomerLifetimeValue tổng doanh thu theo từng khách hàng
func (ctl CustomerController) GetCustomerLifetimeValue(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetCustomerLifetimeValue(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "customer_lifetime_value", results)
}

// GetCustomerSegmentation phân loại khách hàng theo tổng chi tiêu
func (ctl CustomerController) GetCustomerSegmentation(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")

	results, err := ctl.Service.GetCustomerSegmentation(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "customer_segmentation", results)
}
