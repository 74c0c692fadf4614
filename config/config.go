package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ tệp `.env`
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault lấy biến môi trường, trả về giá trị mặc định nếu chưa set
func GetEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
