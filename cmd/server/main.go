// halforms 是基于 HAL-FORMS 的收件箱与消息服务。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version 构建时通过 ldflags 注入
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts serverOptions

	rootCmd := &cobra.Command{
		Use:           "halforms",
		Short:         "HAL-FORMS inbox and message API server",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runServer(opts); err != nil {
				fmt.Fprintf(os.Stderr, "halforms: %v\n", err)
				return err
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "配置文件路径（YAML/JSON/TOML），环境变量优先")
	rootCmd.Flags().BoolVar(&opts.noSeed, "no-seed", false, "启动时不写入演示数据")

	rootCmd.AddCommand(newHealthCmd())
	return rootCmd
}
