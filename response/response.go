package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result trả về response thành công, echo lại query params kèm trường kết quả
func Result(c *gin.Context, field string, value interface{}) {
	body := gin.H{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			body[key] = values[0]
		}
	}
	body[field] = value
	c.JSON(http.StatusOK, body)
}

// Message trả về response thành công với message
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// Error trả về response lỗi server
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}
