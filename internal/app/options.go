package app

import (
	"os"
	"time"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/logger"

	"go.uber.org/zap"
)

// ModeAPI 仅运行 HTTP API（当前唯一的运行模式）
const ModeAPI = "api"

const defaultShutdownTimeout = 10 * time.Second

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// normalizeOptions 补齐默认参数
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	if opts.Mode == "" {
		opts.Mode = ModeAPI
	}
	return opts
}
