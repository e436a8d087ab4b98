// Package log 提供命令行使用的 zap 日志器。
// 非 verbose 模式下只输出 warn 及以上级别，verbose 模式下额外输出 debug 和 info。
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 是项目中使用的日志接口
type Logger = *zap.SugaredLogger

// NewCliLogger 创建写入 stderr 的日志器
func NewCliLogger(stderr io.Writer, verbose bool) Logger {
	return zap.New(stderrCore(stderr, verbose)).Sugar()
}

// NewNop 创建丢弃所有输出的日志器，用于测试
func NewNop() Logger {
	return zap.NewNop().Sugar()
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return true
		}
		return l >= zapcore.WarnLevel
	})

	// 只有 verbose 模式才输出级别前缀
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})

	return zapcore.NewCore(encoder, zapcore.AddSync(stderr), levels)
}
