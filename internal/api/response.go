package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/service"
)

// Response 统一响应格式
type Response struct {
	Success bool        `json:"success"` // 是否成功
	Message string      `json:"message"` // 响应消息
	Data    interface{} `json:"data"`    // 响应数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "success",
		Data:    data,
	})
}

// SuccessMsg 带自定义消息的成功响应
func SuccessMsg(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// HandleServiceError 将业务错误映射为 HTTP 状态码
// 校验、冲突、上传类错误返回 400,记录不存在返回 404,其余按内部错误处理
func HandleServiceError(c *gin.Context, err error) {
	var bizErr *service.BizError
	if errors.As(err, &bizErr) {
		switch bizErr.Kind {
		case service.KindNotFound:
			Error(c, http.StatusNotFound, bizErr.Message)
		case service.KindValidation, service.KindConflict,
			service.KindTooLarge, service.KindUnsupported, service.KindStateDenied:
			Error(c, http.StatusBadRequest, bizErr.Message)
		default:
			Error(c, http.StatusInternalServerError, bizErr.Message)
		}
		return
	}
	Error(c, http.StatusInternalServerError, err.Error())
}
