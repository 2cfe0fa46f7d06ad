package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isTimeoutError 判断是否为存储访问超时/上下文取消
// 超时对外统一呈现为Unavailable(50003),不暴露驱动细节
func isTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		strings.Contains(err.Error(), "invalid connection") ||
		strings.Contains(err.Error(), "i/o timeout")
}

// wrapDBError 将数据库错误转换为业务错误
// 超时→Unavailable,其余→指定业务码(内部错误只进日志)
func wrapDBError(err error, code int, message string) error {
	if isTimeoutError(err) {
		return apperrors.WrapCode(apperrors.ErrCodeUnavailable, err,
			"Service is temporarily unavailable, please try again later.")
	}
	return apperrors.WrapCode(code, err, message)
}
