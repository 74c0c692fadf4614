package config

import (
	"fmt"
	"log"
	"os"

	"salesapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfig() string {
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	sslMode := GetEnvDefault("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslMode)
	return dsn
}

// ConnectDB kết nối đến Postgres
func ConnectDB() {
	var err error
	dsn := getDBConfig()

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB tạo các bảng nếu chưa tồn tại
func MigrateDB() error {
	return DB.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.RefreshLog{},
	)
}
