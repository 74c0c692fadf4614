package jobs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

// DataRefresher định nghĩa interface cho việc nạp lại dữ liệu CSV
type DataRefresher interface {
	Load(ctx context.Context, path string) error
}

var dataRefresher DataRefresher

// SetDataRefresher thiết lập implementation cho DataRefresher
func SetDataRefresher(refresher DataRefresher) {
	dataRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, csvPath string) error {
	if os.Getenv("REFRESH_CRON_ENABLED") != "true" {
		log.Println("Cron refresh disabled")
		return nil
	}

	spec := os.Getenv("REFRESH_CRON")
	if spec == "" {
		// Mặc định chạy lúc 0h mỗi ngày
		spec = "0 0 * * *"
	}

	_, err := c.AddFunc(spec, func() {
		now := time.Now()
		log.Printf("Đang chạy nạp lại dữ liệu CSV lúc: %v", now)
		if dataRefresher == nil {
			log.Printf("Lỗi: DataRefresher chưa được thiết lập")
			return
		}
		if err := dataRefresher.Load(context.Background(), csvPath); err != nil {
			log.Printf("Lỗi khi nạp lại dữ liệu CSV: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
