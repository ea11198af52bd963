package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigCmd 创建 config 子命令
func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "输出生效的配置",
		Long: `按 默认值 < 配置文件 < 环境变量 的优先级合并后，以 YAML 输出生效的配置。

输出可以直接作为 --config 的配置文件使用。`,
		Example: `  postfix config
  PF_BATCH_WORKERS=8 postfix config --config postfix.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.cfg.Serialize()
			if err != nil {
				return fmt.Errorf("序列化配置失败: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
