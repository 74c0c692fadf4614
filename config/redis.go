package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis kết nối đến Redis
func ConnectRedis() (*redis.Client, error) {
	// Khởi tạo client Redis với các tùy chọn
	RDB := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	// Kiểm tra kết nối
	res, err := RDB.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Kết nối Redis thành công:", res)
	return RDB, nil
}
