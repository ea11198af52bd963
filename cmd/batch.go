package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/postfix/internal/batch"
	"yqhp/postfix/internal/config"
	"yqhp/postfix/pkg/logger"
)

// newBatchCmd 创建 batch 子命令
func newBatchCmd(opts *options) *cobra.Command {
	var (
		workers  int
		format   string
		failFast bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "批量转换表达式",
		Long: `从文件或标准输入读取表达式，每行一个，并发转换后按输入顺序输出。

空行和以 # 开头的行会被跳过。任意表达式转换失败时以非零状态退出。

输出格式：
  - text: 每行一个后缀表达式，失败行输出 "line N: error: ..."
  - json: 结果列表和汇总
  - yaml: 结果列表和汇总`,
		Example: `  # 从文件读取
  postfix batch expressions.txt

  # 从标准输入读取，输出 JSON
  cat expressions.txt | postfix batch --format json

  # 遇到第一个错误立即停止
  postfix batch --fail-fast -w 8 expressions.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// 命令行参数覆盖配置文件
			bc := opts.cfg.Batch
			if cmd.Flags().Changed("workers") {
				bc.Workers = workers
			}
			if cmd.Flags().Changed("format") {
				bc.Format = format
			}
			if cmd.Flags().Changed("fail-fast") {
				bc.FailFast = failFast
			}
			return runBatch(cmd, opts, bc, args)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "并发转换的 worker 数")
	cmd.Flags().StringVarP(&format, "format", "f", batch.FormatText, "输出格式 (text, json, yaml)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "遇到第一个错误立即停止")
	return cmd
}

func runBatch(cmd *cobra.Command, opts *options, bc config.BatchConfig, args []string) error {
	cfg := opts.cfg.Clone()
	cfg.Batch = bc
	if err := config.Validate(cfg); err != nil {
		return err
	}

	in, closeFn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	exprs, err := batch.ReadExpressions(in)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor := batch.NewProcessor(batch.Options{
		Workers:  bc.Workers,
		FailFast: bc.FailFast,
	}, opts.log)

	items, err := processor.Process(ctx, exprs)
	if err != nil {
		return fmt.Errorf("批量转换中止: %w", err)
	}

	if err := batch.Write(cmd.OutOrStdout(), items, bc.Format); err != nil {
		return fmt.Errorf("写入结果失败: %w", err)
	}

	if summary := batch.Summarize(items); summary.Failed > 0 {
		logger.Warn("batch finished with failures",
			zap.Int("failed", summary.Failed),
			zap.Int("total", summary.Total),
		)
		return fmt.Errorf("%d/%d 个表达式转换失败", summary.Failed, summary.Total)
	}
	return nil
}

// openInput 打开输入文件，没有参数或参数为 - 时使用标准输入
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("打开输入文件失败: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
