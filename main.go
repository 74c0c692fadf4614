package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"salesapi/config"
	"salesapi/jobs"
	"salesapi/middleware"
	"salesapi/routes"
	"salesapi/services"
	"salesapi/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	router.Use(middleware.RequestIDMiddleware())

	workers := 0
	if workersStr := os.Getenv("LOADER_WORKERS"); workersStr != "" {
		if parsedWorkers, err := strconv.Atoi(workersStr); err == nil && parsedWorkers > 0 {
			workers = parsedWorkers
		}
	}

	loaderService := services.NewCSVLoaderService(services.CSVLoaderServiceOptions{
		DB:      config.DB,
		Logger:  logger.NewDefaultLogger(logger.InfoLevel),
		Workers: workers,
	})
	jobs.SetDataRefresher(loaderService)

	csvPath := config.GetEnvDefault("SALES_CSV_PATH", "./data/sales.csv")
	if err := jobs.InitCronJobs(c, csvPath); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, loaderService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
