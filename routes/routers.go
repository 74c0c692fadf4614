package routes

import (
	"salesapi/config"
	"salesapi/controllers"
	"salesapi/services"
	"salesapi/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, loader *services.CSVLoaderService) {

	revenueService := services.NewRevenueService(services.RevenueServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})

	refreshController := controllers.NewRefreshController(loader, redisCli,
		config.GetEnvDefault("SALES_CSV_PATH", "./data/sales.csv"))
	revenueController := controllers.NewRevenueController(revenueService)
	productController := controllers.NewProductController(revenueService)
	customerController := controllers.NewCustomerController(revenueService)
	orderController := controllers.NewOrderController(revenueService)

	api := router.Group("/api")

	api.POST("/refresh", refreshController.Refresh)
	api.GET("/refresh/status", refreshController.RefreshStatus)

	api.GET("/revenue/total", revenueController.GetTotalRevenue)
	api.GET("/revenue/by-category", revenueController.GetRevenueByCategory)
	api.GET("/revenue/by-product", revenueController.GetRevenueByProduct)
	api.GET("/revenue/by-region", revenueController.GetRevenueByRegion)

	api.GET("/top-products/overall", productController.GetTopProductsOverall)
	api.GET("/top-products/by-category", productController.GetTopProductsByCategory)
	api.GET("/top-products/by-region", productController.GetTopProductsByRegion)
	api.GET("/products/profit-margin", productController.GetProfitMarginByProduct)

	api.GET("/customers/total", customerController.GetTotalCustomers)
	api.GET("/customers/lifetime-value", customerController.GetCustomerLifetimeValue)
	api.GET("/customers/segmentation", customerController.GetCustomerSegmentation)

	api.GET("/orders/total", orderController.GetTotalOrders)
	api.GET("/orders/average-value", orderController.GetAverageOrderValue)
}
