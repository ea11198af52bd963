package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yqhp/postfix/internal/expression"
	"yqhp/postfix/pkg/logger"
)

// newConvertCmd 创建 convert 子命令
func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <expression...>",
		Short: "转换单个中缀表达式",
		Long: `将参数以空格拼接为一个中缀表达式并输出其后缀形式。

没有参数时输出空行。`,
		Example: `  postfix convert "1 + 2 * 3"
  postfix convert "( 1 + 2 ) * 3"
  postfix convert 1 + 2`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infix := strings.Join(args, " ")

			postfix, err := expression.InfixToPostfix(infix)
			if err != nil {
				logger.Debug("conversion failed", zap.String("infix", infix), zap.Error(err))
				return fmt.Errorf("转换失败: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), postfix)
			return nil
		},
	}
}

// newTokenizeCmd 创建 tokenize 子命令
func newTokenizeCmd() *cobra.Command {
	var classify bool

	cmd := &cobra.Command{
		Use:   "tokenize <expression...>",
		Short: "输出表达式的词法单元",
		Long:  `按空白和符号边界切分表达式，每行输出一个词法单元。`,
		Example: `  postfix tokenize "1+2"
  postfix tokenize --classify "( 1 + a )"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := expression.Tokenize(strings.Join(args, " "))
			logger.Debug("tokenized", zap.Int("count", len(tokens)))

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				if classify {
					fmt.Fprintf(out, "%-8s %s\n", expression.Classify(tok), tok)
					continue
				}
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&classify, "classify", false, "同时输出词法单元类型")
	return cmd
}
