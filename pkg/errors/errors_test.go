package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppError 测试业务错误的基本行为
func TestAppError(t *testing.T) {
	t.Run("New创建的错误携带业务码和消息", func(t *testing.T) {
		err := New(ErrCodeBookNotFound, "Could not find the book.")
		assert.Equal(t, ErrCodeBookNotFound, err.Code)
		assert.Equal(t, "Could not find the book.", err.Message)
		assert.Contains(t, err.Error(), "40402")
	})

	t.Run("Wrap保留底层错误供日志使用", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(cause, "Something went wrong.")

		assert.Equal(t, ErrCodeInternal, err.Code)
		assert.Equal(t, "Something went wrong.", err.Message)
		assert.ErrorIs(t, err, cause)
		// 底层错误出现在日志串中,但不会被序列化给客户端
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("NewInvalidRequest携带字段错误表", func(t *testing.T) {
		err := NewInvalidRequest(map[string]string{
			"title": "Title cannot be empty",
		})
		assert.Equal(t, ErrCodeInvalidParams, err.Code)
		assert.Equal(t, "Title cannot be empty", err.Fields["title"])
	})
}

// TestGetAppError 测试错误提取
func TestGetAppError(t *testing.T) {
	t.Run("直接的AppError", func(t *testing.T) {
		err := New(ErrCodeForbidden, "forbidden")
		appErr := GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrCodeForbidden, appErr.Code)
	})

	t.Run("包装过的AppError", func(t *testing.T) {
		inner := New(ErrCodeBookNotFound, "not found")
		wrapped := fmt.Errorf("use case: %w", inner)

		appErr := GetAppError(wrapped)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrCodeBookNotFound, appErr.Code)
	})

	t.Run("普通error兜底为Internal", func(t *testing.T) {
		appErr := GetAppError(errors.New("plain error"))
		require.NotNil(t, appErr)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.False(t, IsAppError(errors.New("plain error")))
	})
}

// TestIsCode 测试业务码判断
func TestIsCode(t *testing.T) {
	err := New(ErrCodeAlreadyReviewed, "Book already reviewed.")
	assert.True(t, IsCode(err, ErrCodeAlreadyReviewed))
	assert.False(t, IsCode(err, ErrCodeBookNotFound))
	assert.False(t, IsCode(nil, ErrCodeBookNotFound))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeInternal))
}
