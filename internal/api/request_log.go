package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/metrics"
	"github.com/sirupsen/logrus"
)

// requestLogLevel 按状态码分级:5xx 记错误,4xx 记警告
func requestLogLevel(status int) logrus.Level {
	switch {
	case status >= 500:
		return logrus.ErrorLevel
	case status >= 400:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// RequestLogMiddleware 请求日志中间件
// 指标按路由模板上报,路径参数不会撑大标签基数
func RequestLogMiddleware() gin.HandlerFunc {
	logger := GetLogger()

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = path
		}
		metrics.RecordAPIRequest(method, route, status, latency.Seconds())

		entry := logger.WithFields(logrus.Fields{
			requestIDKey: c.GetString(requestIDKey),
			"method":     method,
			"path":       path,
			"status":     status,
			"latency":    latency.String(),
			"ip":         c.ClientIP(),
		})
		if query := c.Request.URL.RawQuery; query != "" {
			entry = entry.WithField("query", query)
		}
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		entry.Log(requestLogLevel(status), "request completed")
	}
}
