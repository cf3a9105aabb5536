package template233

import (
	"github.com/go-logr/logr"
)

// Logger 日志接口，基于 logr
// 用户可以注入不同的日志实现（如 funcr, zap, zerolog 等）
type Logger = logr.Logger

// globalLogger 全局日志实现，零值表示未设置
var globalLogger Logger

// SetLogger 设置全局日志实现
// 例如: SetLogger(funcr.New(...))
func SetLogger(logger Logger) {
	globalLogger = logger
}

// getLogger 获取当前日志实现
// 如果未设置，使用 logr.Discard()（不输出日志）
func getLogger() Logger {
	if globalLogger.IsZero() {
		return logr.Discard()
	}
	return globalLogger
}
