package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("合法配置初始化成功", func(t *testing.T) {
		err := Init(Config{Level: "info", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		require.NotNil(t, L())
	})

	t.Run("非法日志级别返回错误", func(t *testing.T) {
		err := Init(Config{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("未初始化时L返回可用的空logger", func(t *testing.T) {
		// zap.NewNop兜底,业务代码不需要判空
		assert.NotNil(t, L())
	})
}
