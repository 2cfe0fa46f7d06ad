package mysql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// TestWrapDBError 测试数据库错误到业务错误的转换
func TestWrapDBError(t *testing.T) {
	t.Run("超时映射为Unavailable", func(t *testing.T) {
		err := wrapDBError(context.DeadlineExceeded, apperrors.ErrCodePersistence, "write failed")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnavailable))

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "Service is temporarily unavailable, please try again later.", appErr.Message)
		// 内部原因保留在Err里(只进日志,不回给客户端)
		assert.ErrorIs(t, appErr, context.DeadlineExceeded)
	})

	t.Run("上下文取消映射为Unavailable", func(t *testing.T) {
		err := wrapDBError(context.Canceled, apperrors.ErrCodeInternal, "query failed")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnavailable))
	})

	t.Run("驱动超时串也映射为Unavailable", func(t *testing.T) {
		err := wrapDBError(fmt.Errorf("dial tcp 127.0.0.1:3306: i/o timeout"),
			apperrors.ErrCodePersistence, "write failed")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnavailable))
	})

	t.Run("其他错误使用传入的业务码", func(t *testing.T) {
		err := wrapDBError(errors.New("syntax error"), apperrors.ErrCodePersistence, "write failed")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodePersistence))

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "write failed", appErr.Message)
	})
}

// TestIsDuplicateError 测试唯一索引冲突识别
func TestIsDuplicateError(t *testing.T) {
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(errors.New(
		"Error 1062 (23000): Duplicate entry '1-10' for key 'idx_book_user'")))
	assert.False(t, isDuplicateError(errors.New("syntax error")))
	assert.False(t, isDuplicateError(nil))
}
