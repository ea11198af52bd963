// Package cmd 提供 postfix CLI 的命令实现
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/postfix/internal/config"
	"yqhp/postfix/pkg/logger"
)

const (
	// Version 是当前版本号
	Version = "0.1.0"
	// Banner 是版本信息中显示的 ASCII 艺术
	Banner = `
   ___           _    __ _
  / _ \___  ___ | |_ / _(_)_  __
 / /_)/ _ \/ __|| __| |_| \ \/ /
/ ___/ (_) \__ \| |_|  _| |>  <
\/    \___/|___/ \__|_| |_/_/\_\  %s
`
)

// options 保存全局 flags 以及加载后的配置
type options struct {
	cfgFile string
	debug   bool
	quiet   bool

	cfg *config.Config
	log *zap.Logger
}

// setup 加载配置并初始化日志
func (o *options) setup() error {
	cfg, err := config.LoadFromFile(o.cfgFile)
	if err != nil {
		return err
	}

	switch {
	case o.debug:
		cfg.Logging.Level = "debug"
	case o.quiet:
		cfg.Logging.Level = "error"
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger.Init(cfg.Logging.LoggerConfig())
	o.cfg = cfg
	o.log = logger.L()
	return nil
}

// NewRootCmd 创建根命令及全部子命令
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "postfix",
		Short: "中缀表达式转后缀表达式",
		Long: `postfix 使用调度场算法将中缀算术表达式转换为后缀（逆波兰）表达式。

支持非负整数、+ - * / 四种左结合运算符以及 ( ) 和 [ ] 两种括号。
可以单条转换、批量转换，也可以作为 REST 服务运行。`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	// 全局 flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "配置文件路径")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "启用调试日志")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "静默模式")

	// 禁用默认的 completion 命令
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// 自定义版本模板
	rootCmd.SetVersionTemplate(fmt.Sprintf(Banner, Version) + "\n")

	rootCmd.AddCommand(
		newConvertCmd(),
		newTokenizeCmd(),
		newBatchCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

// Execute 执行根命令
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
