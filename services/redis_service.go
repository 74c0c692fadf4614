package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	RefreshLockKey = "refresh:lock"
	RefreshLockTTL = 30 * time.Minute
)

// releaseLockScript chỉ xóa lock khi token còn khớp, tránh trường hợp
// lock đã hết TTL và một lần chạy khác đang giữ key
const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// AcquireLock lấy lock bằng SETNX với token riêng cho mỗi lần chạy.
// Trả về token nếu lấy được, chuỗi rỗng nếu lock đang bị giữ.
func AcquireLock(ctx context.Context, rdb *redis.Client, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	acquired, err := rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !acquired {
		return "", err
	}
	return token, nil
}

// ReleaseLock xóa lock nếu token vẫn là token của lần chạy này
func ReleaseLock(ctx context.Context, rdb *redis.Client, key, token string) error {
	return rdb.Eval(ctx, releaseLockScript, []string{key}, token).Err()
}
