package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 开发环境使用彩色控制台输出，其余环境输出 JSON
func NewLogger(env *Env) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(env.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", env.LogLevel, err)
	}

	var cfg zap.Config
	if env.IsDevelopment() {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
