package app

import (
	"errors"
	"fmt"

	"github.com/mxshop-next/internal/cache"
	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/provider"
	"github.com/mxshop-next/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if mode != ModeAPI {
		return nil, fmt.Errorf("unsupported mode %q", mode)
	}

	container := provider.NewContainer(cfg)
	engine := router.SetupRouter(cfg, container)
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	return NewRunner(NewHTTPService(addr, engine)), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}
	defer func() {
		if err := cache.Close(); err != nil {
			opts.Logger.Warnw("app_close_redis_failed", "error", err)
		}
	}()

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode, "server_mode", opts.Config.Server.Mode)
	return RunWithOptions(runner, opts)
}
