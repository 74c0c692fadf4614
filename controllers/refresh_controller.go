package controllers

import (
	"context"
	"log"

	"salesapi/response"
	"salesapi/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RefreshController struct {
	Loader  *services.CSVLoaderService
	Redis   *redis.Client
	CSVPath string
}

func NewRefreshController(loader *services.CSVLoaderService, redisCli *redis.Client, csvPath string) RefreshController {
	return RefreshController{
		Loader:  loader,
		Redis:   redisCli,
		CSVPath: csvPath,
	}
}

// Refresh kích hoạt nạp lại dữ liệu từ file CSV đã cấu hình.
// Trả về OK ngay khi việc nạp được dispatch, kết quả từng dòng xem qua
// refresh log. Lock Redis chặn hai lần nạp chạy chồng lên nhau.
func (ctl RefreshController) Refresh(c *gin.Context) {
	var lockToken string
	if ctl.Redis != nil {
		token, err := services.AcquireLock(c.Request.Context(), ctl.Redis, services.RefreshLockKey, services.RefreshLockTTL)
		if err != nil {
			response.Error(c, err)
			return
		}
		if token == "" {
			response.Message(c, "Data refresh already running.")
			return
		}
		lockToken = token
	}

	go func() {
		ctx := context.Background()
		defer func() {
			if ctl.Redis != nil {
				if err := services.ReleaseLock(ctx, ctl.Redis, services.RefreshLockKey, lockToken); err != nil {
					log.Printf("Không release được refresh lock: %v", err)
				}
			}
		}()
		ctl.Loader.Load(ctx, ctl.CSVPath)
	}()

	response.Message(c, "Data refresh triggered.")
}

// RefreshStatus kết quả lần nạp dữ liệu gần nhất
func (ctl RefreshController) RefreshStatus(c *gin.Context) {
	status, err := ctl.Loader.LastRefresh(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Result(c, "refresh_status", status)
}
