package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/postfix/api/rest"
	"yqhp/postfix/internal/batch"
	"yqhp/postfix/internal/config"
	"yqhp/postfix/pkg/logger"
)

// newServeCmd 创建 serve 子命令
func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 REST API 服务",
		Long: `启动 REST API 服务，收到 SIGINT 或 SIGTERM 时优雅关闭。

接口：
  - GET  /health, /ready
  - POST /api/v1/convert
  - POST /api/v1/convert/batch`,
		Example: `  postfix serve
  postfix serve --addr 127.0.0.1:9090
  postfix serve --config postfix.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg.Clone()
			if addr != "" {
				cfg.Server.Address = addr
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			processor := batch.NewProcessor(batch.Options{
				Workers:  cfg.Batch.Workers,
				FailFast: cfg.Batch.FailFast,
			}, opts.log)
			server := rest.NewServer(&cfg.Server, processor, opts.log)

			// 处理关闭信号
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting REST API server", zap.String("address", cfg.Server.Address))
			if err := server.StartWithContext(ctx); err != nil {
				return fmt.Errorf("服务运行失败: %w", err)
			}
			logger.Info("REST API server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "监听地址 (覆盖配置文件)")
	return cmd
}
