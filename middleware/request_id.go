package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tạo requestId nếu chưa có và gán vào context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-ID")
		if requestId == "" {
			// Tạo requestId mới
			requestId = uuid.NewString()
		}

		// Gán vào context để dùng trong controller hoặc service
		c.Set("requestId", requestId)

		// Gán lại header
		c.Writer.Header().Set("X-Request-ID", requestId)

		c.Next()
	}
}
