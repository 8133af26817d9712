package service

import "fmt"

// 业务错误种类,控制器据此映射 HTTP 状态码
const (
	KindValidation  = "VALIDATION"   // 缺失或非法字段
	KindNotFound    = "NOT_FOUND"    // 记录不存在或已删除
	KindConflict    = "CONFLICT"     // 跨机构挂靠、同级重名等冲突
	KindTooLarge    = "TOO_LARGE"    // 上传超限
	KindUnsupported = "UNSUPPORTED"  // 不支持的文件格式
	KindStateDenied = "STATE_DENIED" // 当前状态不允许该操作
)

// BizError 业务错误
type BizError struct {
	Kind    string
	Message string
}

func (e *BizError) Error() string {
	return e.Message
}

// NewValidationError 创建字段校验错误
func NewValidationError(format string, args ...interface{}) *BizError {
	return &BizError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError 创建记录不存在错误
func NewNotFoundError(format string, args ...interface{}) *BizError {
	return &BizError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError 创建冲突错误
func NewConflictError(format string, args ...interface{}) *BizError {
	return &BizError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewTooLargeError 创建上传超限错误
func NewTooLargeError(format string, args ...interface{}) *BizError {
	return &BizError{Kind: KindTooLarge, Message: fmt.Sprintf(format, args...)}
}

// NewUnsupportedError 创建文件格式错误
func NewUnsupportedError(format string, args ...interface{}) *BizError {
	return &BizError{Kind: KindUnsupported, Message: fmt.Sprintf(format, args...)}
}

// NewStateDeniedError 创建状态不允许错误
func NewStateDeniedError(format string, args ...interface{}) *BizError {
	return &BizError{Kind: KindStateDenied, Message: fmt.Sprintf(format, args...)}
}
