package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 设计说明：
// 1. 使用zap作为结构化日志库（pkg/response记录内部错误时使用）
// 2. 日志级别、格式、输出目标由配置文件的log段控制
// 3. 全局logger通过Init注入，业务代码用logger.L()获取

var global *zap.Logger = zap.NewNop()

// Config 日志配置
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// Init 根据配置构建全局logger
func Init(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableCaller = !cfg.EnableCaller

	if cfg.Format == "console" {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	zapCfg.OutputPaths = []string{output}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	l, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	global = l
	return nil
}

// L 获取全局logger
func L() *zap.Logger {
	return global
}

// Sync 刷新缓冲的日志（进程退出前调用）
func Sync() {
	_ = global.Sync()
}
