package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey 请求 ID 在 gin 上下文与日志字段中的键名
const requestIDKey = "request_id"

// RequestIDMiddleware 请求 ID 中间件
// 透传客户端的 X-Request-ID,缺失时生成新的
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
